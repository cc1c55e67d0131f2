package apierrors

const (
	MsgInvalidID              = "invalidID"
	MsgInvalidProjectPayload  = "invalidProjectPayload"
	MsgInvalidTaskPayload     = "invalidTaskPayload"
	MsgInvalidCommentPayload  = "invalidCommentPayload"
	MsgProjectNotFound        = "projectNotFound"
	MsgTaskNotFound           = "taskNotFound"
	MsgProjectHasPendingTasks = "projectHasPendingTasks"
	MsgTaskLimitReached       = "taskLimitReached"
	MsgPriorityImmutable      = "priorityImmutable"
	MsgInvalidReference       = "invalidReference"
	MsgNotManager             = "notManager"
	MsgFailListProjects       = "failListProjects"
	MsgFailGetProject         = "failGetProject"
	MsgFailCreateProject      = "failCreateProject"
	MsgFailUpdateProject      = "failUpdateProject"
	MsgFailDeleteProject      = "failDeleteProject"
	MsgFailListTasks          = "failListTasks"
	MsgFailGetTask            = "failGetTask"
	MsgFailCreateTask         = "failCreateTask"
	MsgFailUpdateTask         = "failUpdateTask"
	MsgFailDeleteTask         = "failDeleteTask"
	MsgFailAddComment         = "failAddComment"
	MsgFailReport             = "failReport"
)
