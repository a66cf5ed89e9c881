package console

import (
	"fmt"

	"github.com/asaskevich/EventBus"
	"github.com/labstack/gommon/random"
)

// NotifyTopic is the event bus topic transient notifications are published on.
const NotifyTopic = "console.notify"

type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notification is a transient status message for the shell to flash.
type Notification struct {
	ID      string
	Level   Level
	Message string
}

// Notifier publishes screen notifications on a shared event bus. Screens never
// talk to the shell directly; the shell subscribes to the topic.
type Notifier struct {
	bus EventBus.Bus
}

func NewNotifier(bus EventBus.Bus) *Notifier {
	return &Notifier{bus: bus}
}

// Notify publishes one notification.
func (n *Notifier) Notify(level Level, format string, args ...interface{}) {
	n.bus.Publish(NotifyTopic, Notification{
		ID:      random.String(8),
		Level:   level,
		Message: fmt.Sprintf(format, args...),
	})
}

// Subscribe registers a handler for published notifications.
func (n *Notifier) Subscribe(fn func(Notification)) error {
	return n.bus.Subscribe(NotifyTopic, fn)
}
