// Package platform sends desktop notifications through the host's
// notification service.
package platform

import "time"

// DefaultAppName is reported as the sender when Options.AppName is empty.
const DefaultAppName = "ShineyDraw"

// Options configures how a notification is displayed.
type Options struct {
	AppName string
	// IconPath, when non-empty, is an image shown with the notification on
	// platforms that support it.
	IconPath string
	// Timeout is how long the notification stays up; zero leaves it to the
	// platform.
	Timeout time.Duration
}

func (o Options) appName() string {
	if o.AppName == "" {
		return DefaultAppName
	}
	return o.AppName
}
