package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/charroster/internal/model"
	"github.com/mcoot/charroster/internal/shell"
)

func newListCmd() *cobra.Command {
	var profession string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List characters in the roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			var characters []*model.Character
			var err error
			if profession != "" {
				characters, err = app.RosterService.FindByProfession(cmd.Context(), profession)
			} else {
				characters, err = app.RosterService.List(cmd.Context())
			}
			if err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(characters)
			return nil
		},
	}

	cmd.Flags().StringVar(&profession, "profession", "", "Only list characters of this profession (exact match)")

	return cmd
}

func newFindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find <name>",
		Short: "Find a character by name (case-insensitive)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.RosterService.Find(cmd.Context(), args[0])
			if err != nil {
				return notFoundMessage(err, args[0])
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(c)
			return nil
		},
	}
}

func newAddCmd() *cobra.Command {
	var name, profession string
	var level, hp int
	var equipment []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a character to the roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" || profession == "" {
				return fmt.Errorf("--name and --profession are required")
			}

			c, err := app.RosterService.Add(cmd.Context(), model.NewCharacter(name, profession, level, hp, equipment))
			if err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(c)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Character name (required)")
	cmd.Flags().StringVar(&profession, "profession", "", "Character profession (required)")
	cmd.Flags().IntVar(&level, "level", 1, "Starting level")
	cmd.Flags().IntVar(&hp, "hp", 10, "Hit points")
	cmd.Flags().StringArrayVar(&equipment, "equipment", nil, "Equipment item (repeatable)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("profession")

	return cmd
}

func newLevelUpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "level-up <name>",
		Short: "Increase a character's level by one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.RosterService.LevelUp(cmd.Context(), args[0])
			if err != nil {
				return notFoundMessage(err, args[0])
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			if cfg.Output == "json" {
				out.Print(c)
			} else {
				out.PrintMessage(fmt.Sprintf("%s is now level %d.", c.Name, c.Level))
			}
			return nil
		},
	}
}

func newShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive character management menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			sh := shell.New(app.RosterService, cmd.InOrStdin(), cmd.OutOrStdout(), app.Logger)
			return sh.Run(cmd.Context())
		},
	}
}

func notFoundMessage(err error, name string) error {
	if errors.Is(err, model.ErrCharacterNotFound) {
		return fmt.Errorf("%w: %q", err, name)
	}
	return err
}
