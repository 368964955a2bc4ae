// utils/capabilities.go
//
// Per-action authorization. Every mutating route declares the capability it
// requires; the principal's roles must grant it or the request fails closed
// with 403.
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	CapManageClients = "manage_clients" // clients, billing entities, sites, POCs, locations
	CapManageCatalog = "manage_catalog" // shoot types
	CapManageShoots  = "manage_shoots"
	CapManageEdits   = "manage_edits"
	CapManageCoupons = "manage_coupons"
	CapManageTeam    = "manage_team"
)

// Role names match models.ValidRoles; kept as literals here so models can
// depend on utils and not the other way around.
var roleCapabilities = map[string][]string{
	"admin": {
		CapManageClients,
		CapManageCatalog,
		CapManageShoots,
		CapManageEdits,
		CapManageCoupons,
		CapManageTeam,
	},
	"photographer": {CapManageShoots},
	"editor":       {CapManageEdits},
}

// HasCapability reports whether any of the roles grants the capability.
// Unknown roles and unknown capabilities grant nothing.
func HasCapability(roles []string, capability string) bool {
	for _, role := range roles {
		for _, granted := range roleCapabilities[role] {
			if granted == capability {
				return true
			}
		}
	}
	return false
}

// RolesFromContext returns the role list stored by AuthMiddleware.
func RolesFromContext(c *gin.Context) []string {
	value, exists := c.Get("roles")
	if !exists {
		return nil
	}
	roles, _ := value.([]string)
	return roles
}

// RequireCapability gates a route on a capability. Fails closed: no
// principal or no grant means 403.
func RequireCapability(capability string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !HasCapability(RolesFromContext(c), capability) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}
		c.Next()
	}
}
