package model

// Credentials учётные данные для входа. Нигде не сохраняются.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Auth ответ сервера на успешный логин.
type Auth struct {
	AccessToken string `json:"access_token"`
}

// RegisterRequest тело запроса на создание пользователя.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

// User публичное представление пользователя.
type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
