package model

// Category категория товара (как её отдаёт сервер).
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Product - товар каталога.
type Product struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Images      []string `json:"images"`
}

// ProductWithTax товар с вычисленным на клиенте налогом. Поле taxes на сервер не отправляется.
type ProductWithTax struct {
	Product
	Taxes float64 `json:"taxes"`
}

// CreateProductDTO тело запроса на создание товара.
type CreateProductDTO struct {
	Title       string   `json:"title"`
	Price       float64  `json:"price"`
	Images      []string `json:"images"`
	Description string   `json:"description"`
	CategoryID  int64    `json:"categoryId"`
}

// UpdateProductDTO частичное обновление: в JSON попадают только заданные поля.
type UpdateProductDTO struct {
	Title       *string  `json:"title,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Images      []string `json:"images,omitempty"`
	Description *string  `json:"description,omitempty"`
	CategoryID  *int64   `json:"categoryId,omitempty"`
}

// Empty сообщает, что ни одно поле не задано.
func (d UpdateProductDTO) Empty() bool {
	return d.Title == nil && d.Price == nil && d.Images == nil && d.Description == nil && d.CategoryID == nil
}

// ListParams параметры пагинации. Передаются серверу только если заданы оба.
type ListParams struct {
	Limit  *int
	Offset *int
}

// Page helper для ListParams с обоими значениями.
func Page(limit, offset int) ListParams {
	return ListParams{Limit: &limit, Offset: &offset}
}
