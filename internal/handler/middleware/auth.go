package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"canteen-reservation/internal/domain/student"
	"canteen-reservation/internal/pkg/cookie"
	"canteen-reservation/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxStudentIDKey   = "student_id"
	ctxStudentRoleKey = "student_role"
)

var roleHierarchy = map[student.Role]int{
	student.RoleStudent: 1,
	student.RoleAdmin:   2,
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetAccessToken(c)

		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		studentID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxStudentIDKey, studentID)
		c.Set(ctxStudentRoleKey, role)
		c.Set("jwt_claims", map[string]any{
			"student_id": studentID.String(),
			"role":       string(role),
		})
		c.Next()
	}
}

func hasMinimumRole(studentRole, minRole student.Role) bool {
	roleLevel, roleExists := roleHierarchy[studentRole]
	minLevel, minExists := roleHierarchy[minRole]
	return roleExists && minExists && roleLevel >= minLevel
}

// RequireRoleAtLeast must run after RequireAuth.
func (m *AuthMiddleware) RequireRoleAtLeast(minRole student.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetStudentRole(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		if !hasMinimumRole(role, minRole) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func GetStudentID(c *gin.Context) (uuid.UUID, bool) {
	studentID, exists := c.Get(ctxStudentIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := studentID.(uuid.UUID)
	return id, ok
}

func GetStudentRole(c *gin.Context) (student.Role, bool) {
	studentRole, exists := c.Get(ctxStudentRoleKey)
	if !exists {
		return "", false
	}

	role, ok := studentRole.(student.Role)
	return role, ok
}

func IsAdmin(c *gin.Context) bool {
	role, ok := GetStudentRole(c)
	return ok && role == student.RoleAdmin
}
