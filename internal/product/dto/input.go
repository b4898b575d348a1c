package dto

// WarrantyInput uses pointers so handlers can tell "absent" from zero
// values; both fields must be set together.
type WarrantyInput struct {
	Status *bool   `json:"status"`
	Value  *string `json:"value"`
}

type ColorInput struct {
	Name  string `json:"name" binding:"required"`
	Image string `json:"image" binding:"required"`
}

type CreateProductInput struct {
	Title       string  `json:"title" form:"title" binding:"required"`
	Slug        string  `json:"slug" form:"slug"`
	Description string  `json:"description" form:"description" binding:"required"`
	Price       float64 `json:"price" form:"price" binding:"gte=0"`
	// Images are URLs; ignored when files are uploaded alongside.
	Images    []string `json:"images" form:"images"`
	MainImage string   `json:"mainImage" form:"mainImage"`
	Stock     int      `json:"stock" form:"stock" binding:"gte=0"`
	Condition string   `json:"condition" form:"condition" binding:"required,oneof=new used"`
	Category  string   `json:"category" form:"category" binding:"required"`
	Brand     string   `json:"brand" form:"brand"`
	Model     string   `json:"model" form:"model"`

	Rating       float64 `json:"rating" form:"rating" binding:"gte=0,lte=5"`
	TotalReviews int     `json:"totalReviews" form:"totalReviews" binding:"gte=0"`

	EnabledPaymentMethods []string `json:"enabledPaymentMethods" form:"enabledPaymentMethods"`

	FreeShipping    bool           `json:"freeShipping" form:"freeShipping"`
	Warranty        *WarrantyInput `json:"warranty"`
	Features        []string       `json:"features" form:"features"`
	AvailableColors []ColorInput   `json:"availableColors"`
}

// UpdateProductInput is a partial payload: nil means "leave untouched".
type UpdateProductInput struct {
	Title       *string  `json:"title" form:"title"`
	Slug        *string  `json:"slug" form:"slug"`
	Description *string  `json:"description" form:"description"`
	Price       *float64 `json:"price" form:"price" binding:"omitempty,gte=0"`
	Images      []string `json:"images" form:"images"`
	MainImage   *string  `json:"mainImage" form:"mainImage"`
	Stock       *int     `json:"stock" form:"stock" binding:"omitempty,gte=0"`
	Condition   *string  `json:"condition" form:"condition" binding:"omitempty,oneof=new used"`
	Category    *string  `json:"category" form:"category"`
	Brand       *string  `json:"brand" form:"brand"`
	Model       *string  `json:"model" form:"model"`

	Rating       *float64 `json:"rating" form:"rating" binding:"omitempty,gte=0,lte=5"`
	TotalReviews *int     `json:"totalReviews" form:"totalReviews" binding:"omitempty,gte=0"`

	EnabledPaymentMethods []string `json:"enabledPaymentMethods" form:"enabledPaymentMethods"`

	FreeShipping    *bool          `json:"freeShipping" form:"freeShipping"`
	Warranty        *WarrantyInput `json:"warranty"`
	Features        []string       `json:"features" form:"features"`
	AvailableColors []ColorInput   `json:"availableColors"`
}
