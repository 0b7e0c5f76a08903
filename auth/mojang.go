package auth

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	ns "github.com/mwath/mcli/net_structures"
)

const mojangSessionServerURL = "https://sessionserver.mojang.com"

// joinRequest is the payload for POST /session/minecraft/join.
type joinRequest struct {
	AccessToken     string `json:"accessToken"`
	SelectedProfile string `json:"selectedProfile"`
	ServerID        string `json:"serverId"`
}

// errorResponse is Mojang's error body shape.
type errorResponse struct {
	Error        string `json:"error"`
	ErrorMessage string `json:"errorMessage,omitempty"`
}

func (e errorResponse) String() string {
	if e.ErrorMessage != "" {
		return fmt.Sprintf("%s: %s", e.Error, e.ErrorMessage)
	}
	return e.Error
}

// MojangSessionAuthenticator implements Authenticator against Mojang's
// session server using a pre-acquired access token. It does not refresh
// that token itself; Refresh is a no-op, leaving token lifecycle to
// whatever obtained the token in the first place.
type MojangSessionAuthenticator struct {
	baseURL     string
	httpClient  *http.Client
	accessToken string
	user        User
}

// NewMojangSessionAuthenticator returns an authenticator for user,
// authenticated with accessToken.
func NewMojangSessionAuthenticator(user User, accessToken string) *MojangSessionAuthenticator {
	return &MojangSessionAuthenticator{
		baseURL:     mojangSessionServerURL,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		accessToken: accessToken,
		user:        user,
	}
}

func (a *MojangSessionAuthenticator) Refresh() error { return nil }

func (a *MojangSessionAuthenticator) User() User { return a.user }

// Join POSTs the join request to the session server. serverHash is the
// already-computed Minecraft SHA-1 of (serverID, sharedSecret, publicKey);
// Join does not compute it, since the caller owns the handshake state that
// produces it.
func (a *MojangSessionAuthenticator) Join(serverHash string) error {
	if !ns.ValidateUUID(a.user.ID) {
		return fmt.Errorf("%w: invalid profile id %q", ErrJoinFailed, a.user.ID)
	}
	if !ValidateAccessToken(a.accessToken) {
		return fmt.Errorf("%w: malformed access token", ErrJoinFailed)
	}

	body, err := json.Marshal(joinRequest{
		AccessToken:     a.accessToken,
		SelectedProfile: a.user.ID,
		ServerID:        serverHash,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrJoinFailed, err)
	}

	req, err := http.NewRequest(http.MethodPost, a.baseURL+"/session/minecraft/join", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrJoinFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "mcli")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrJoinFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	respBody, _ := io.ReadAll(resp.Body)
	var errResp errorResponse
	if err := json.Unmarshal(respBody, &errResp); err != nil {
		return fmt.Errorf("%w: %s (status %d)", ErrJoinFailed, string(respBody), resp.StatusCode)
	}
	return fmt.Errorf("%w: %s (status %d)", ErrJoinFailed, errResp.String(), resp.StatusCode)
}
