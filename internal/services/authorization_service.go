// internal/services/authorization_service.go
package services

import "github.com/doniphane/clickandship/internal/models"

// Action is a capability a caller may or may not hold.
type Action string

const (
	ActionManageProducts Action = "products:manage"
)

// AuthorizationService answers "may these roles perform this action". It
// replaces scattered role-string checks with one explicit capability map.
type AuthorizationService struct{}

func NewAuthorizationService() *AuthorizationService {
	return &AuthorizationService{}
}

func (s *AuthorizationService) Authorize(roles []string, action Action) bool {
	switch action {
	case ActionManageProducts:
		return hasAnyRole(roles, models.RoleSeller, models.RoleAdmin)
	}
	return false
}

func hasAnyRole(roles []string, wanted ...string) bool {
	for _, r := range roles {
		for _, w := range wanted {
			if r == w {
				return true
			}
		}
	}
	return false
}
