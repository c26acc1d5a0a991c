package cmd

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kozaktomas/skin-advisor/internal/catalog"
	"github.com/kozaktomas/skin-advisor/internal/config"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the product catalog",
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the product catalog file",
	Long: `Load the product catalog and report problems (missing file, malformed
JSON, duplicate or empty product ids). Exits non-zero when invalid.`,
	RunE: runCatalogValidate,
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the products in the catalog",
	RunE:  runCatalogList,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogListCmd)

	catalogCmd.PersistentFlags().String("products", "", "Path to the product catalog file (overrides PRODUCT_FILE_PATH)")
	catalogListCmd.Flags().String("tag", "", "Only list products carrying this concern tag")
}

func loadCatalogFromFlags(cmd *cobra.Command) (*catalog.Catalog, string, error) {
	cfg := config.Load()
	path := cfg.Catalog.Path
	if products := mustGetString(cmd, "products"); products != "" {
		path = products
	}

	cat, err := catalog.Load(path)
	if err != nil {
		return nil, path, err
	}
	return cat, path, nil
}

func runCatalogValidate(cmd *cobra.Command, args []string) error {
	cat, path, err := loadCatalogFromFlags(cmd)
	if err != nil {
		return fmt.Errorf("catalog %s is invalid: %w", path, err)
	}

	tags := map[string]int{}
	for _, product := range cat.Products() {
		for _, tag := range product.ConcernTags {
			tags[tag]++
		}
	}

	fmt.Printf("Catalog %s is valid\n", path)
	fmt.Printf("  Products: %d\n", cat.Len())
	for _, tag := range slices.Sorted(maps.Keys(tags)) {
		fmt.Printf("  %s: %d product(s)\n", tag, tags[tag])
	}
	return nil
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	cat, _, err := loadCatalogFromFlags(cmd)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	tag := mustGetString(cmd, "tag")

	count := 0
	for _, product := range cat.Products() {
		if tag != "" && !product.HasTag(tag) {
			continue
		}
		fmt.Printf("%-6s %-32s %s\n", product.ID, product.Name, strings.Join(product.ConcernTags, ", "))
		count++
	}

	if count == 0 {
		fmt.Println("No products matched.")
	}
	return nil
}
