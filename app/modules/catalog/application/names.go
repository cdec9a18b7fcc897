package catalogservice

import (
	"strings"

	catalogdomain "github.com/Black-And-White-Club/trivia-bot/app/modules/catalog/domain"
)

// DisplayNames returns the raw identifier followed by its locale "item" and
// "block" names when present. The result is never empty.
func (c *Catalog) DisplayNames(id catalogdomain.ItemID) []string {
	names := []string{string(id)}
	key := strings.ToLower(string(id))
	if name, ok := c.lang["item."+c.namespace+"."+key]; ok && name != "" {
		names = append(names, name)
	}
	if name, ok := c.lang["block."+c.namespace+"."+key]; ok && name != "" {
		names = append(names, name)
	}
	return names
}

// PreferredName is the name shown to players: the last display name, so a
// localized name wins over the raw identifier.
func (c *Catalog) PreferredName(id catalogdomain.ItemID) string {
	names := c.DisplayNames(id)
	return names[len(names)-1]
}
