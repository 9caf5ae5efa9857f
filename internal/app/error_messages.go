// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the human-readable diagnostic strings shared by the
// client façade, the scenario runner and the interactive menu.
//
// Msg* constants are fmt format strings. They are printed after an Icon*
// prefix so that success and failure lines stay recognisable in scripted
// output.
package app

const (
	IconOK   = "✅"
	IconFail = "❌"
	IconUser = "👤"
	IconBye  = "👋"
	IconTest = "🧪"
	IconScan = "🔍"
)

// Authentication.
const (
	MsgRegisterOK     = "Registration successful! Welcome %s (%s)"
	MsgRegisterFailed = "Registration failed: %s"
	MsgLoginOK        = "Login successful! Welcome back %s (%s)"
	MsgLoginFailed    = "Login failed: %s"
	MsgLoggedOut      = "Logged out successfully"
	MsgLoggedInAs     = "Logged in as: %s (%s)"
	MsgNotLoggedIn    = "Not logged in"
)

// Tasks and users.
const (
	MsgGraphQLErrors      = "GraphQL errors: %s"
	MsgTasksRetrieved     = "Retrieved %d tasks"
	MsgTasksFailed        = "Failed to get tasks: %s"
	MsgTaskRetrieved      = "Retrieved task: %s"
	MsgTaskNotFound       = "Task with ID %s not found"
	MsgTaskFailed         = "Failed to get task: %s"
	MsgTaskCreated        = "Created task: %s (ID: %s)"
	MsgTaskCreateFailed   = "Failed to create task: %s"
	MsgTaskUpdated        = "Updated task: %s (ID: %s)"
	MsgTaskUpdateFailed   = "Failed to update task: %s"
	MsgTaskDeleted        = "Deleted task with ID: %s"
	MsgTaskDeleteRejected = "Failed to delete task with ID: %s"
	MsgTaskDeleteFailed   = "Failed to delete task: %s"
	MsgDeletionCancelled  = "Deletion cancelled"
	MsgUsersRetrieved     = "Retrieved %d users"
	MsgUsersFailed        = "Failed to get users: %s"
)

// Monitoring.
const (
	MsgHealth            = "Application health: %s"
	MsgHealthFailed      = "Health check failed: %s"
	MsgMetrics           = "Available metrics: %d"
	MsgMetricsFailed     = "Metrics request failed: %s"
	MsgServerCheck       = "Checking if Task Manager server is running..."
	MsgServerUnreachable = "Task Manager server is not running or not accessible at %s"
)

// Failure reasons.
const (
	MsgHTTPStatus       = "HTTP %d: %s"
	MsgHTTPStatusOnly   = "HTTP %d"
	MsgRequestFailed    = "Request failed: %s"
	MsgInvalidResponse  = "Invalid response: %s"
	MsgNoTokenReturned  = "server returned no token"
	MsgEmptyResult      = "server returned no result"
	MsgInvalidTaskID    = "Invalid task ID"
	MsgInvalidTaskInput = "Invalid task ID or estimation hours"
	MsgInvalidHours     = "Invalid estimation hours"
	MsgInvalidDate      = "Invalid due date, expected YYYY-MM-DD"
	MsgTokenCopied      = "Token copied to clipboard"
	MsgCopyFailed       = "Copy failed: %s"
	MsgNothingToCopy    = "No token to copy"
	MsgInvalidChoice    = "Invalid choice. Please try again."
	MsgGoodbye          = "Goodbye!"
)

// Scenarios.
const (
	MsgScenarioHeader    = "RUNNING COMPLETE TEST SCENARIO"
	MsgStepHealth        = "Checking application health..."
	MsgStepRegister      = "Registering test user..."
	MsgStepCreateTasks   = "Creating test tasks..."
	MsgStepListTasks     = "Retrieving all tasks..."
	MsgStepUpdateTask    = "Updating task %s..."
	MsgStepGetTask       = "Getting task %s by ID..."
	MsgStepListUsers     = "Retrieving all users..."
	MsgStepMetrics       = "Checking application metrics..."
	MsgStepCleanup       = "Cleaning up - deleting task %s..."
	MsgStopUnhealthy     = "Application is not healthy. Stopping test."
	MsgStopRegistration  = "Registration failed. Stopping test."
	MsgContinueCreation  = "Task creation failed. Continuing with other tests..."
	MsgScenarioPassed    = "Test scenario completed successfully!"
	MsgScenarioFailed    = "Test scenario completed with %d failed step(s)"
	MsgScenarioStopped   = "Test scenario stopped early"
	MsgScenarioLogsHint  = "Check your application logs for correlation IDs and metrics."
	MsgQuickHeader       = "QUICK TEST - Task Manager API"
	MsgQuickHealth       = "Testing health check..."
	MsgQuickLogin        = "Testing login with default user..."
	MsgQuickCreate       = "Testing task creation..."
	MsgQuickList         = "Testing get all tasks..."
	MsgQuickUpdate       = "Testing task update..."
	MsgQuickGet          = "Testing get task by ID..."
	MsgQuickDelete       = "Testing task deletion..."
	MsgQuickNoServer     = "Server is not running."
	MsgQuickLoginFailed  = "Login failed. Check if default users are created."
	MsgQuickCreateFailed = "Task creation failed."
	MsgQuickListFailed   = "Get tasks failed."
	MsgQuickUpdateFailed = "Task update failed."
	MsgQuickGetFailed    = "Get task by ID failed."
	MsgQuickDeleteFailed = "Task deletion failed."
	MsgQuickPassed       = "ALL TESTS PASSED!"
	MsgQuickPassedHint   = "Your Task Manager API is working correctly."
	MsgSummary           = "Summary: %d passed, %d failed, %d skipped in %s (started %s)"
)
