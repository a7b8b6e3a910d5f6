package model

// CreateProductRequest тело POST /api/products.
type CreateProductRequest struct {
	Title       string   `json:"title" validate:"required,max=255"`
	Price       float64  `json:"price" validate:"gte=0"`
	Description string   `json:"description" validate:"max=4000"`
	CategoryID  int64    `json:"categoryId" validate:"required,gt=0"`
	Images      []string `json:"images" validate:"dive,url"`
}

// UpdateProductRequest тело PUT /api/products/{id}: применяются только переданные поля.
type UpdateProductRequest struct {
	Title       *string  `json:"title" validate:"omitempty,min=1,max=255"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Description *string  `json:"description" validate:"omitempty,max=4000"`
	CategoryID  *int64   `json:"categoryId" validate:"omitempty,gt=0"`
	Images      []string `json:"images" validate:"omitempty,dive,url"`
}

// RegisterRequest тело POST /api/users.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=4,max=72"`
	Name     string `json:"name" validate:"max=255"`
}

// LoginRequest тело POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse ответ на успешный логин.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}
