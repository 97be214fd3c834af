package handler

// Request and response types for the store API. Requests carry both json and
// form tags: JSON is the primary encoding, form-encoded bodies are accepted
// as a fallback on write endpoints.

type loginRequest struct {
	Email    string `json:"email"    form:"email"`
	Password string `json:"password" form:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

type itemResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

type listItemsResponse struct {
	Items []itemResponse `json:"items"`
}

type addItemRequest struct {
	Name string `json:"name" form:"name" validate:"required"`
	// Pointer so a missing price is distinguishable from an explicit zero.
	Price *int64 `json:"price" form:"price" validate:"required,gte=0"`
}

type addItemResponse struct {
	Message string       `json:"message"`
	Item    itemResponse `json:"item"`
}

type updateProfileRequest struct {
	Name string `json:"name" form:"name"`
}

type profileResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type updateProfileResponse struct {
	Message string          `json:"message"`
	Profile profileResponse `json:"profile"`
}

type userResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}
