package dto

type ProjectItem struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   *string `json:"updatedAt,omitempty"`
	UserID      uint64  `json:"userId"`
	UserName    string  `json:"userName"`
	TaskCount   int     `json:"taskCount"`
}

type CreateProjectRequest struct {
	Name        string  `json:"name" binding:"required,max=200"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	UserID      uint64  `json:"userId" binding:"required,gt=0"`
}

type UpdateProjectRequest struct {
	Name        string  `json:"name" binding:"required,max=200"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
}
