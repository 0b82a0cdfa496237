package cli

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/urfave/cli/v2"
)

func (r *Runner) swaggerView() *cli.Command {
	return &cli.Command{
		Name:  "swagger",
		Usage: "show the API's OpenAPI document",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "raw", Usage: "print the whole document as JSON"},
		},
		Action: func(c *cli.Context) error {
			api, err := r.Client()
			if err != nil {
				return err
			}
			doc, err := api.OpenAPI(c.Context)
			if err != nil {
				return err
			}

			if c.Bool("raw") {
				enc := json.NewEncoder(r.Out)
				enc.SetIndent("", "  ")
				return enc.Encode(doc)
			}

			if info, ok := doc["info"].(map[string]any); ok {
				r.printf("%v %v\n\n", info["title"], info["version"])
			}
			paths, _ := doc["paths"].(map[string]any)
			for _, path := range sortedKeys(paths) {
				ops, _ := paths[path].(map[string]any)
				methods := sortedKeys(ops)
				for i := range methods {
					methods[i] = strings.ToUpper(methods[i])
				}
				r.printf("%-40s %s\n", path, strings.Join(methods, " "))
			}
			return nil
		},
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
