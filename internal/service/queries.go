package service

const taskFields = `
	id
	title
	description
	completed
	status
	dueDate
	estimationHours
	createdAt
	updatedAt
	assignedUsers {
		id
		username
	}`

const (
	queryTasks = `query {
	tasks {` + taskFields + `
	}
}`

	queryTask = `query($id: ID!) {
	task(id: $id) {` + taskFields + `
	}
}`

	mutationCreateTask = `mutation($input: CreateTaskInput!) {
	createTask(input: $input) {` + taskFields + `
	}
}`

	mutationUpdateTask = `mutation($id: ID!, $input: UpdateTaskInput!) {
	updateTask(id: $id, input: $input) {` + taskFields + `
	}
}`

	mutationDeleteTask = `mutation($id: ID!) {
	deleteTask(id: $id)
}`

	queryUsers = `query {
	users {
		id
		username
		email
		firstName
		lastName
		createdAt
		assignedTasks {
			id
			title
		}
	}
}`
)
