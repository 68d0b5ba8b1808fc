package model

// Principal — аутентифицированный вызывающий, восстановленный из JWT.
type Principal struct {
	UserID string
	OrgID  string
	Role   string
}
