package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/rheard/netauto/internal/output"
	"github.com/rheard/netauto/internal/schema"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List the property catalog",
	Long: `List every pattern with its condition-usable properties, the nickname
shortcuts, and the property names that collide across patterns and
therefore need a pattern__ prefix.`,
	RunE: runPatterns,
}

func init() {
	rootCmd.AddCommand(patternsCmd)
	patternsCmd.Flags().String("pattern", "", "Limit output to one pattern")
}

type propertyListing struct {
	Key  string `yaml:"key"  json:"key"`
	ID   int    `yaml:"id"   json:"id"`
	Kind string `yaml:"kind" json:"kind"`
}

type patternListing struct {
	Name       string            `yaml:"name"                 json:"name"`
	Properties []propertyListing `yaml:"properties,omitempty" json:"properties,omitempty"`
}

type nicknameListing struct {
	Nickname string `yaml:"nickname" json:"nickname"`
	Target   string `yaml:"target"   json:"target"`
}

type collisionListing struct {
	Key      string   `yaml:"key"      json:"key"`
	Patterns []string `yaml:"patterns" json:"patterns"`
}

type patternsResult struct {
	OK         bool               `yaml:"ok"                   json:"ok"`
	Action     string             `yaml:"action"               json:"action"`
	Patterns   []patternListing   `yaml:"patterns"             json:"patterns"`
	Nicknames  []nicknameListing  `yaml:"nicknames,omitempty"  json:"nicknames,omitempty"`
	Collisions []collisionListing `yaml:"collisions,omitempty" json:"collisions,omitempty"`
}

func runPatterns(cmd *cobra.Command, args []string) error {
	filter, _ := cmd.Flags().GetString("pattern")
	result, err := patternsReport(filter)
	if err != nil {
		return err
	}
	return output.Print(result)
}

// patternsReport assembles the catalog listing shared by the CLI command
// and the MCP tool.
func patternsReport(filter string) (patternsResult, error) {
	names := schema.PatternNames()
	if filter != "" {
		pascal := schema.SnakeToPascal(filter)
		if _, ok := schema.Patterns[pascal]; !ok {
			return patternsResult{}, fmt.Errorf("unknown pattern: %s", filter)
		}
		names = []string{pascal}
	}

	result := patternsResult{OK: true, Action: "patterns"}
	for _, name := range names {
		listing := patternListing{Name: name}
		for _, p := range sortedProperties(schema.Patterns[name]) {
			listing.Properties = append(listing.Properties, propertyListing{
				Key:  schema.PascalToSnake(p.Name),
				ID:   p.ID,
				Kind: p.Kind.String(),
			})
		}
		result.Patterns = append(result.Patterns, listing)
	}

	if filter == "" {
		result.Nicknames = nicknameListings()
		result.Collisions = collisionListings()
	}
	return result, nil
}

func sortedProperties(props map[string]schema.Property) []schema.Property {
	out := make([]schema.Property, 0, len(props))
	for _, p := range props {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func nicknameListings() []nicknameListing {
	out := make([]nicknameListing, 0, len(schema.Nicknames))
	for nick, target := range schema.Nicknames {
		out = append(out, nicknameListing{
			Nickname: schema.PascalToSnake(nick),
			Target:   schema.PascalToSnake(target.Name),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nickname < out[j].Nickname })
	return out
}

// collisionListings reports property names owned by more than one pattern;
// these are the keys that only resolve with a pattern__ prefix.
func collisionListings() []collisionListing {
	owners := map[string][]string{}
	for _, pattern := range schema.PatternNames() {
		for name := range schema.Patterns[pattern] {
			owners[name] = append(owners[name], pattern)
		}
	}

	var out []collisionListing
	for name, patterns := range owners {
		if len(patterns) < 2 {
			continue
		}
		sort.Strings(patterns)
		out = append(out, collisionListing{
			Key:      schema.PascalToSnake(name),
			Patterns: patterns,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
