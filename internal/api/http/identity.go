package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Test-Alliance-Please-Ignore/auth-next-sub000/internal/service"
)

// Identity headers injected by the upstream session gateway after it has
// authenticated the caller. This service performs no authentication itself.
const (
	headerUserID       = "X-Auth-User-Id"
	headerCharacterID  = "X-Auth-Character-Id"
	headerCharacterIDs = "X-Auth-Character-Ids" // comma-separated linked characters
	headerAdmin        = "X-Auth-Admin"
)

func identityFromRequest(r *http.Request) (service.Identity, bool) {
	userID, err := strconv.ParseInt(r.Header.Get(headerUserID), 10, 64)
	if err != nil || userID == 0 {
		return service.Identity{}, false
	}

	caller := service.Identity{
		UserID:  userID,
		IsAdmin: r.Header.Get(headerAdmin) == "true",
	}
	if v := r.Header.Get(headerCharacterID); v != "" {
		if characterID, err := strconv.ParseInt(v, 10, 64); err == nil {
			caller.CharacterID = characterID
		}
	}
	if v := r.Header.Get(headerCharacterIDs); v != "" {
		for _, part := range strings.Split(v, ",") {
			if characterID, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64); err == nil {
				caller.CharacterIDs = append(caller.CharacterIDs, characterID)
			}
		}
	}
	return caller, true
}

// withIdentity rejects requests the gateway did not stamp with a user id.
func withIdentity(next func(http.ResponseWriter, *http.Request, service.Identity)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := identityFromRequest(r)
		if !ok {
			respondJSON(w, http.StatusUnauthorized, map[string]string{"error": "caller identity missing"})
			return
		}
		next(w, r, caller)
	}
}
