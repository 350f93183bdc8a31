package domain

// Уровни доступа аккаунтов.
const (
	PermissionCashier = 1
	PermissionManager = 2
	PermissionAdmin   = 3
)

// Account — учётная запись сотрудника; ключ — email.
type Account struct {
	Email      string `json:"email"`
	Permission int    `json:"permission"`
}
