package records

import "errors"

var (
	// ErrLoad возвращается при ошибке чтения коллекции
	ErrLoad = errors.New("records.store: failed to load collection")

	// ErrSave возвращается при ошибке записи коллекции
	ErrSave = errors.New("records.store: failed to save collection")

	// ErrDecode возвращается, когда документ коллекции не удаётся разобрать
	ErrDecode = errors.New("records.store: failed to decode collection")

	// ErrEncode возвращается, когда коллекцию не удаётся сериализовать
	ErrEncode = errors.New("records.store: failed to encode collection")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("records.postgres: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("records.postgres: failed to execute query")

	// ErrTransaction возвращается при ошибках работы с транзакцией
	ErrTransaction = errors.New("records.postgres: transaction error")

	// ErrUnknownDriver возвращается при неизвестном типе хранилища
	ErrUnknownDriver = errors.New("records: unknown storage driver")
)
