package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/chainpay-labs/paybot/internal/assistant"
	"github.com/chainpay-labs/paybot/internal/store"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the payroll assistant in the terminal",
	Long:  `Starts an interactive conversation with the assistant. Type "exit" or "quit" to leave.`,
	RunE:  runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	st, database, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	engine, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	persisted, err := st.CreateSession(ctx)
	if err != nil {
		return fmt.Errorf("creating session: %w", err)
	}
	sess := assistant.NewSession()
	sess.ID = persisted.ID

	company := cfg.CompanyName
	if company == "" {
		company = "your company"
	}
	fmt.Printf("Chatting about %s. Type \"exit\" to leave.\n\n", company)

	for {
		p := promptui.Prompt{
			Label:     "you",
			AllowEdit: true,
		}
		message, err := p.Run()
		if err != nil {
			// Ctrl-C or Ctrl-D ends the conversation.
			if err == promptui.ErrInterrupt || err == promptui.ErrEOF {
				return nil
			}
			return fmt.Errorf("reading input: %w", err)
		}

		message = strings.TrimSpace(message)
		if message == "" {
			continue
		}
		if message == "exit" || message == "quit" {
			return nil
		}

		snap, err := st.Snapshot(ctx, cfg.CompanyName)
		if err != nil {
			return fmt.Errorf("loading payroll data: %w", err)
		}

		reply := engine.Respond(ctx, sess, message, snap)
		fmt.Printf("\npaybot> %s\n\n", reply.Text)

		if _, err := st.AddTurn(ctx, store.ChatTurn{
			SessionID: sess.ID,
			Message:   message,
			Response:  reply.Text,
			Kind:      reply.Kind,
		}); err != nil {
			return fmt.Errorf("recording turn: %w", err)
		}
	}
}
