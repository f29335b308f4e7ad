package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openmediahub/mediashelf/pkg/types"
)

var (
	itemAddFile       string
	itemAddIdentifier string
	itemAddFields     []string
)

var itemAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an item to the repository",
	Long: `Add stores a new item and persists the repository immediately.

With --file the identifier is derived from the digest of the file
content, so the same media always maps to the same item. With
--identifier the given value is used directly; it must consist of
letters and digits only. Metadata travels in repeated --field flags;
fields outside the schema are dropped. An identifier that already
exists is rejected and the repository is left untouched.

Example:
  shelf item add --file sunrise.svg --field title=Sunrise --field creator=bob@example.com
  shelf item add --identifier notes2024 --field title="Field notes"
  shelf item add --file clip.ogg --field format=audio/ogg --json`,
	Args: cobra.NoArgs,
	RunE: runItemAdd,
}

func init() {
	itemAddCmd.Flags().StringVar(&itemAddFile, "file", "",
		"media file whose content digest becomes the identifier")
	itemAddCmd.Flags().StringVar(&itemAddIdentifier, "identifier", "",
		"explicit identifier, letters and digits only")
	itemAddCmd.Flags().StringArrayVar(&itemAddFields, "field", nil,
		"metadata field as name=value (repeatable)")
	itemCmd.AddCommand(itemAddCmd)
}

func runItemAdd(cmd *cobra.Command, args []string) error {
	if (itemAddFile == "") == (itemAddIdentifier == "") {
		return fmt.Errorf("exactly one of --file or --identifier is required")
	}

	fields, err := parseFieldFlags(itemAddFields)
	if err != nil {
		return err
	}
	for name := range fields {
		if !schema.Has(name) {
			shellLog.Debugf("dropping unknown field %q", name)
		}
	}

	var item *types.Item
	if itemAddFile != "" {
		f, err := os.Open(itemAddFile)
		if err != nil {
			return fmt.Errorf("opening media file: %w", err)
		}
		built, err := types.NewItemFromContent(schema, digest, f, fields)
		f.Close()
		if err != nil {
			return fmt.Errorf("building item: %w", err)
		}
		item = built
	} else {
		if !validIdentifier(itemAddIdentifier) {
			return fmt.Errorf("invalid identifier %q, letters and digits only", itemAddIdentifier)
		}
		applyFormDefaults(schema, fields)
		built, err := types.NewItem(schema, itemAddIdentifier, fields)
		if err != nil {
			return fmt.Errorf("building item: %w", err)
		}
		item = built
	}

	// The repository itself overwrites on identifier collision; the
	// shell rejects instead.
	if _, exists := repo.Lookup(item.Identifier()); exists {
		return fmt.Errorf("item %s already exists", item.Identifier())
	}

	if err := repo.Add(item); err != nil {
		return fmt.Errorf("adding item: %w", err)
	}
	if err := repo.Dump(); err != nil {
		return fmt.Errorf("persisting repository: %w", err)
	}
	shellLog.Infof("added item %s (%d total)", item.Identifier(), repo.Len())

	if flagJSON {
		return printItemJSON(item)
	}
	fmt.Println("Added item:", item.Identifier())
	return nil
}
