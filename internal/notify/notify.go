// Package notify delivers best-effort desktop notifications on phase
// completion. Delivery failures (no notification daemon, headless
// session) are logged and dropped; the timer never blocks on or
// observes them.
package notify

import (
	"log"

	"github.com/gen2brain/beeep"
)

// Notifier sends desktop notifications through the OS notification
// daemon.
type Notifier struct{}

// New returns a Notifier.
func New() Notifier { return Notifier{} }

// Send shows a notification with the given title and body.
func (Notifier) Send(title, body string) {
	if err := beeep.Notify(title, body, ""); err != nil {
		log.Printf("notification failed: %v", err)
	}
}
