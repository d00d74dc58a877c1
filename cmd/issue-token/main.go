// Command issue-token mints an access token for a staff member of one outlet.
// Staff accounts live in the property management system; this tool covers
// local setups and terminals provisioned by hand.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/sangkips/hospitality-pos/internal/config"
	"github.com/sangkips/hospitality-pos/pkg/logger"
	"github.com/sangkips/hospitality-pos/pkg/utils"
)

var allPermissions = "manage-orders,view-invoices,print-invoices,manage-settings,manage-discounts"

func main() {
	outlet := flag.String("outlet", "", "outlet UUID (required)")
	user := flag.String("user", "", "user UUID, generated when empty")
	name := flag.String("name", "terminal", "display name")
	roles := flag.String("roles", "staff", "comma separated roles")
	perms := flag.String("permissions", allPermissions, "comma separated permissions")
	flag.Parse()

	cfg := config.Load()
	logger.Init(cfg.Log.Level, cfg.App.Env)

	outletID, err := uuid.Parse(*outlet)
	if err != nil || outletID == uuid.Nil {
		log.Fatal().Str("outlet", *outlet).Msg("A valid -outlet UUID is required")
	}

	userID := uuid.New()
	if *user != "" {
		if userID, err = uuid.Parse(*user); err != nil {
			log.Fatal().Err(err).Msg("Invalid -user UUID")
		}
	}

	manager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)
	token, err := manager.GenerateAccessToken(userID, outletID, *name, splitList(*roles), splitList(*perms))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to sign token")
	}

	fmt.Fprintln(os.Stdout, token)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
