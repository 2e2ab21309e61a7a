package entity

// User пользователь из внешнего сервиса аутентификации
type User struct {
	ID    string
	Email string
}

// Profile публичный профиль пользователя (таблица profiles)
type Profile struct {
	ID       string
	Email    string
	FullName string
}
