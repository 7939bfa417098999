package notify

import "errors"

var (
	// ErrEncode возвращается, если сообщение не удалось сериализовать
	ErrEncode = errors.New("notify: failed to encode message")

	// ErrHubClosed возвращается при публикации в остановленный hub
	ErrHubClosed = errors.New("notify: hub is closed")

	// ErrHubBusy возвращается, когда очередь рассылки переполнена
	ErrHubBusy = errors.New("notify: broadcast queue is full")

	// ErrPublish возвращается при ошибке публикации в redis
	ErrPublish = errors.New("notify: failed to publish")
)
