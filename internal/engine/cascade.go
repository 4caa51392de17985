package engine

import (
	"fmt"

	"pos-service/internal/model"

	"go.uber.org/zap"
)

// notify prepends a notification to the list (newest first). When the
// notification is an error or a warning and a notification email is
// configured, a simulated-delivery echo is prepended ahead of it, so the
// echo ends up more recent than the notification it mirrors. Each
// qualifying notification gets its own echo. Callers must hold e.mu.
func (e *Engine) notify(message string, typ model.NotificationType) {
	n := model.Notification{
		ID:        e.newID(),
		Message:   message,
		Type:      typ,
		Timestamp: e.now(),
	}
	e.notifications = append([]model.Notification{n}, e.notifications...)

	if e.settings.NotificationEmail != "" &&
		(typ == model.NotificationError || typ == model.NotificationWarning) {
		echo := model.Notification{
			ID:        e.newID(),
			Message:   fmt.Sprintf("[Email Simulé] Envoyé à %s: %s", e.settings.NotificationEmail, message),
			Type:      model.NotificationInfo,
			Timestamp: e.now(),
		}
		e.notifications = append([]model.Notification{echo}, e.notifications...)
		e.log.Info("Email echo emitted",
			zap.String("to", e.settings.NotificationEmail),
			zap.String("for", string(typ)))
	}

	e.persist(keyNotifications, e.notifications)
}

// AddNotification injects a notification directly, bypassing the engine
// operations but not the cascade: error and warning injections still
// produce their email echo.
func (e *Engine) AddNotification(message string, typ model.NotificationType) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.notify(message, typ)
}
