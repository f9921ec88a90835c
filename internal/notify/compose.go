// Package notify renders booking emails and hands them to a delivery
// backend.  No mail is actually sent: the backends log the message.
package notify

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/valyala/fasttemplate"

	"github.com/iliyamo/studio-booking/internal/queue"
)

// Kind names which booking email is sent.
type Kind string

const (
	KindReceived Kind = "booking.received"
	KindApproved Kind = "booking.approved"
	KindRejected Kind = "booking.rejected"
)

// Message is a rendered email.
type Message struct {
	Kind    Kind
	To      string
	Subject string
	Body    string
}

type emailTemplate struct {
	subject string
	body    *fasttemplate.Template
}

const signature = "\n\nThank you,\nIshaat Studio Team\n"

var templates = map[Kind]emailTemplate{
	KindReceived: {
		subject: "Ishaat Studio Booking Request Received",
		body: fasttemplate.New(`Dear {{name}},

We have received your booking request for the Ishaat Studio.

Booking Reference: {{reference}}
Date: {{date}}
Time: {{time}}
Duration: {{duration}} hour(s)

Your request is currently being reviewed. You will receive another email once we have processed your request.`+signature, "{{", "}}"),
	},
	KindApproved: {
		subject: "Ishaat Studio Booking Approved",
		body: fasttemplate.New(`Dear {{name}},

Your booking request has been APPROVED.

Booking Reference: {{reference}}
Date: {{date}}
Time: {{time}}
Duration: {{duration}} hour(s)

Please arrive 15 minutes before your scheduled time.`+signature, "{{", "}}"),
	},
	KindRejected: {
		subject: "Ishaat Studio Booking Not Available",
		body: fasttemplate.New(`Dear {{name}},

We regret to inform you that your booking request cannot be accommodated at this time.

Booking Reference: {{reference}}
Date: {{date}}
Time: {{time}}

Please try booking for a different date or time. If you have any questions, please contact the studio administrator.

Thank you for your understanding,
Ishaat Studio Team
`, "{{", "}}"),
	},
}

// Compose renders the email of the given kind for ev.
func Compose(kind Kind, ev queue.NotificationEvent) (Message, error) {
	tpl, ok := templates[kind]
	if !ok {
		return Message{}, fmt.Errorf("unknown notification kind %q", kind)
	}
	if strings.TrimSpace(ev.Email) == "" {
		return Message{}, fmt.Errorf("notification %s for %s has no recipient", kind, ev.Reference)
	}
	body := tpl.body.ExecuteString(map[string]interface{}{
		"name":      ev.Name,
		"reference": ev.Reference,
		"date":      ev.Date,
		"time":      ev.Time,
		"duration":  strconv.Itoa(ev.Duration),
	})
	return Message{Kind: kind, To: ev.Email, Subject: tpl.subject, Body: body}, nil
}
