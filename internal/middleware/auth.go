package middleware

import (
	"errors"
	"net/http"
	"strings"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthMiddleware - проверка JWT и резолв текущего пользователя.
// Токен может быть валиден, а пользователь уже удален - это тоже 401.
// Проверка stateless: никакого session store, только подпись + БД.
func AuthMiddleware(userRepo repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}

		db, ok := dbFromContext(c)
		if !ok {
			logger.CtxError(c.Request.Context(), "auth middleware: db not found in context")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}

		user, err := userRepo.FindByID(db, claims.UserID)
		if err != nil {
			if errors.Is(err, repositories.ErrUserNotFound) {
				// Аккаунт мог быть удален после выпуска токена
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "User not found"})
				return
			}
			// Сбой хранилища - не ошибка аутентификации
			logger.CtxWithError(c.Request.Context(), "auth middleware: failed to load user", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), user.ID)
		c.Request = c.Request.WithContext(ctx)
		c.Set(contextkeys.CurrentUserKey, user)
		c.Next()
	}
}

func dbFromContext(c *gin.Context) (*gorm.DB, bool) {
	val, ok := c.Get(string(contextkeys.DBContextKey))
	if !ok {
		return nil, false
	}
	db, ok := val.(*gorm.DB)
	return db, ok
}
