package models

type Task struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	// UserID points at a User but is never checked by the service.
	UserID *int64 `json:"user_id"`
}

// TaskFromRecord decodes a tb_task row.
func TaskFromRecord(rec map[string]any) (*Task, error) {
	var (
		task Task
		err  error
	)
	if task.ID, err = int64Field(rec, "id"); err != nil {
		return nil, err
	}
	if task.Title, err = stringField(rec, "title"); err != nil {
		return nil, err
	}
	if task.Description, err = nullStringField(rec, "description"); err != nil {
		return nil, err
	}
	if task.Status, err = nullStringField(rec, "status"); err != nil {
		return nil, err
	}
	if task.UserID, err = nullInt64Field(rec, "user_id"); err != nil {
		return nil, err
	}
	return &task, nil
}
