package dto

type TaskItem struct {
	ID            uint64            `json:"id"`
	Title         string            `json:"title"`
	Description   *string           `json:"description,omitempty"`
	Status        string            `json:"status"`
	Priority      string            `json:"priority"`
	CreatedAt     string            `json:"createdAt"`
	UpdatedAt     *string           `json:"updatedAt,omitempty"`
	DueDate       *string           `json:"dueDate,omitempty"`
	ProjectID     uint64            `json:"projectId"`
	ProjectName   string            `json:"projectName"`
	UserID        uint64            `json:"userId"`
	UserName      string            `json:"userName"`
	TaskHistories []TaskHistoryItem `json:"taskHistories"`
}

type TaskHistoryItem struct {
	ID        uint64 `json:"id"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"createdAt"`
	UserName  string `json:"userName"`
}

type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required,max=300"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	Priority    string  `json:"priority" binding:"required,oneof=Low Medium High"`
	DueDate     *string `json:"dueDate"`
	ProjectID   uint64  `json:"projectId" binding:"required,gt=0"`
	UserID      uint64  `json:"userId" binding:"required,gt=0"`
}

type UpdateTaskRequest struct {
	Title       string  `json:"title" binding:"required,max=300"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	Status      string  `json:"status" binding:"required,oneof=Pending InProgress Completed Cancelled"`
	DueDate     *string `json:"dueDate"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=Low Medium High"`
}

type AddCommentRequest struct {
	Comment string `json:"comment" binding:"required,max=2000"`
	UserID  uint64 `json:"userId" binding:"required,gt=0"`
}
