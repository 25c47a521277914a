/*
Package words supplies the secret five-letter words for new rooms.

The Source tries one or more remote word endpoints with a short timeout and
falls back to a built-in list when every remote tier fails. Fetching never
fails from the caller's point of view.
*/
package words

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"wordrush/internal/pkg/logx"
)

// DefaultFetchTimeout bounds each remote lookup. On expiry the next tier (or
// the local list) is used immediately; room creation never blocks indefinitely.
const DefaultFetchTimeout = 3 * time.Second

// Source implements game.WordSource over remote word APIs with a local backup list.
type Source struct {
	client    *http.Client
	endpoints []string
	timeout   time.Duration
	logger    zerolog.Logger
}

// NewSource builds a Source that queries the given endpoints in order. Each
// endpoint must respond with a JSON array whose first element is a candidate
// word. A zero timeout selects DefaultFetchTimeout.
func NewSource(endpoints []string, timeout time.Duration) *Source {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}

	return &Source{
		client:    &http.Client{Timeout: timeout},
		endpoints: endpoints,
		timeout:   timeout,
		logger:    logx.Logger().With().Str("component", "WordSource").Logger(),
	}
}

// FetchWord returns a 5-letter uppercase word. Remote tiers are tried in order;
// any network error, timeout, non-200 status, or malformed/invalid payload is
// swallowed and the next tier is consulted. The local backup list guarantees a
// result.
func (s *Source) FetchWord(ctx context.Context) string {
	for _, endpoint := range s.endpoints {
		word, err := s.fetchRemote(ctx, endpoint)
		if err != nil {
			s.logger.Warn().Err(err).Str("endpoint", endpoint).Msg("Remote word lookup failed.")
			continue
		}

		s.logger.Info().Msg("Secret word drawn from remote provider.")
		return word
	}

	word := Backup[rand.Intn(len(Backup))]
	s.logger.Info().Msg("Secret word drawn from backup list.")
	return word
}

// fetchRemote performs one remote lookup and validates the response.
func (s *Source) fetchRemote(ctx context.Context, endpoint string) (string, error) {
	reqCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("building word request: %w", err)
	}

	res, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("word request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("word endpoint returned status %d", res.StatusCode)
	}

	var candidates []string
	if err := json.NewDecoder(res.Body).Decode(&candidates); err != nil {
		return "", fmt.Errorf("decoding word response: %w", err)
	}
	if len(candidates) == 0 {
		return "", fmt.Errorf("word endpoint returned an empty list")
	}

	word := strings.ToUpper(strings.TrimSpace(candidates[0]))
	if !IsValidWord(word) {
		return "", fmt.Errorf("word endpoint returned unusable word %q", word)
	}

	return word, nil
}

// IsValidWord reports whether the word is exactly five uppercase ASCII letters.
func IsValidWord(word string) bool {
	if len(word) != 5 {
		return false
	}
	for _, r := range word {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
