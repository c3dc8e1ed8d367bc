package handlers

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const sessionUserIDKey = "userID"

// currentUserID pulls the authenticated user's ID out of the session.
func currentUserID(c *gin.Context) (uint, bool) {
	session := sessions.Default(c)
	userID, ok := session.Get(sessionUserIDKey).(uint)
	return userID, ok
}
