package models

type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserFromRecord decodes a tb_user row.
func UserFromRecord(rec map[string]any) (*User, error) {
	var (
		user User
		err  error
	)
	if user.ID, err = int64Field(rec, "id"); err != nil {
		return nil, err
	}
	if user.Name, err = stringField(rec, "name"); err != nil {
		return nil, err
	}
	if user.Email, err = stringField(rec, "email"); err != nil {
		return nil, err
	}
	return &user, nil
}
