package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/task-manager-client/internal/app"
	"github.com/MKhiriev/task-manager-client/internal/utils"
	"github.com/MKhiriev/task-manager-client/models"
	"github.com/dustin/go-humanize"
)

func statusLine(s models.Session) string {
	if !s.Authenticated() || s.Identity == nil {
		return app.IconUser + " " + app.MsgNotLoggedIn
	}
	return app.IconUser + " " + fmt.Sprintf(app.MsgLoggedInAs, s.Identity.Username, s.Identity.Role)
}

// renderSession prints the held identity and token. Claims are decoded
// without verification and shown only when the token is a JWT.
func renderSession(s models.Session, now time.Time) string {
	if !s.Authenticated() || s.Identity == nil {
		return app.MsgNotLoggedIn + "\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Username: %s\n", s.Identity.Username)
	fmt.Fprintf(&b, "Email: %s\n", s.Identity.Email)
	fmt.Fprintf(&b, "Role: %s\n", s.Identity.Role)
	fmt.Fprintf(&b, "Token: %s\n", s.AbbreviatedToken())

	claims, err := utils.InspectJWTToken(s.Token)
	if err != nil {
		return b.String()
	}
	if claims.Subject != "" {
		fmt.Fprintf(&b, "Subject: %s\n", claims.Subject)
	}
	if claims.ExpiresAt != nil {
		state := "expires"
		if claims.Expired(now) {
			state = "expired"
		}
		fmt.Fprintf(&b, "Token %s %s\n", state, humanize.RelTime(*claims.ExpiresAt, now, "ago", "from now"))
	}
	return b.String()
}
