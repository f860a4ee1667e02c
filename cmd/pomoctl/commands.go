package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	spaceFlag    string
	workFlag     int
	shortFlag    int
	longFlag     int
	intervalFlag int
	leaveFlag    bool
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a session in the space you are in",
	Args:  cobra.NoArgs,
	RunE:  runStart,
}

var statusCmd = &cobra.Command{
	Use:   "status [user]",
	Short: "Show the session a user owns or joined",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runStatus,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List active sessions",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var joinCmd = &cobra.Command{
	Use:   "join <owner>",
	Short: "Join another user's session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := self()
		if err != nil {
			return err
		}
		return addMember(cmd, args[0], user)
	},
}

var leaveCmd = &cobra.Command{
	Use:   "leave <owner>",
	Short: "Leave a session you joined",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := self()
		if err != nil {
			return err
		}
		return removeMember(cmd, args[0], user)
	},
}

var addCmd = &cobra.Command{
	Use:   "add <user>",
	Short: "Add a user to your session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		owner, err := self()
		if err != nil {
			return err
		}
		return addMember(cmd, owner, args[0])
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove <user>",
	Short: "Remove a user from your session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		owner, err := self()
		if err != nil {
			return err
		}
		return removeMember(cmd, owner, args[0])
	},
}

var presenceCmd = &cobra.Command{
	Use:   "presence <space>",
	Short: "Report entering (or with --leave, leaving) a shared space",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresence,
}

var timelineCmd = &cobra.Command{
	Use:   "timeline [owner]",
	Short: "Show recent notifications of a session",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTimeline,
}

var statsCmd = &cobra.Command{
	Use:   "stats [user]",
	Short: "Show lifetime work totals",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runStats,
}

var resetStatsCmd = &cobra.Command{
	Use:   "reset-stats [user]",
	Short: "Reset lifetime work totals and print what they were",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runResetStats,
}

func controlCmd(action, short string) *cobra.Command {
	return &cobra.Command{
		Use:   action + " [owner]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := targetOrSelf(args)
			if err != nil {
				return err
			}
			if err = NewClient(config.ServerAddr).Control(cmd.Context(), owner, action); err != nil {
				return err
			}
			newPrinter(cmd.OutOrStdout(), config.Colours).success(fmt.Sprintf("%s requested for %s's session", action, owner))
			return nil
		},
	}
}

func init() {
	startCmd.Flags().StringVarP(&spaceFlag, "space", "s", "", "shared space the session runs in")
	startCmd.Flags().IntVar(&workFlag, "work", 0, "work minutes")
	startCmd.Flags().IntVar(&shortFlag, "short", 0, "short break minutes")
	startCmd.Flags().IntVar(&longFlag, "long", 0, "long break minutes")
	startCmd.Flags().IntVar(&intervalFlag, "interval", 0, "work phases between long breaks")
	_ = startCmd.MarkFlagRequired("space")
	presenceCmd.Flags().BoolVar(&leaveFlag, "leave", false, "report leaving the space")

	rootCmd.AddCommand(
		startCmd,
		statusCmd,
		listCmd,
		controlCmd("pause", "Pause a session"),
		controlCmd("resume", "Resume a paused session"),
		controlCmd("stop", "Stop a session"),
		joinCmd,
		leaveCmd,
		addCmd,
		removeCmd,
		presenceCmd,
		timelineCmd,
		statsCmd,
		resetStatsCmd,
	)
}

func runStart(cmd *cobra.Command, _ []string) error {
	owner, err := self()
	if err != nil {
		return err
	}
	req := StartRequest{OwnerID: owner, SpaceID: spaceFlag}
	flags := cmd.Flags()
	if flags.Changed("work") {
		req.WorkMinutes = &workFlag
	}
	if flags.Changed("short") {
		req.ShortBreakMinutes = &shortFlag
	}
	if flags.Changed("long") {
		req.LongBreakMinutes = &longFlag
	}
	if flags.Changed("interval") {
		req.LongBreakInterval = &intervalFlag
	}
	snapshot, err := NewClient(config.ServerAddr).Start(cmd.Context(), req)
	if err != nil {
		return err
	}
	newPrinter(cmd.OutOrStdout(), config.Colours).snapshot(snapshot)
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	user, err := targetOrSelf(args)
	if err != nil {
		return err
	}
	snapshot, err := NewClient(config.ServerAddr).Status(cmd.Context(), user)
	if err != nil {
		return err
	}
	newPrinter(cmd.OutOrStdout(), config.Colours).snapshot(snapshot)
	return nil
}

func runList(cmd *cobra.Command, _ []string) error {
	list, err := NewClient(config.ServerAddr).List(cmd.Context())
	if err != nil {
		return err
	}
	newPrinter(cmd.OutOrStdout(), config.Colours).sessions(list)
	return nil
}

func addMember(cmd *cobra.Command, owner, user string) error {
	resp, err := NewClient(config.ServerAddr).Join(cmd.Context(), owner, user)
	if err != nil {
		return err
	}
	newPrinter(cmd.OutOrStdout(), config.Colours).success(
		fmt.Sprintf("%s joined %s's session, members: %v", user, resp.OwnerID, resp.Members))
	return nil
}

func removeMember(cmd *cobra.Command, owner, user string) error {
	if err := NewClient(config.ServerAddr).Leave(cmd.Context(), owner, user); err != nil {
		return err
	}
	newPrinter(cmd.OutOrStdout(), config.Colours).success(fmt.Sprintf("%s left %s's session", user, owner))
	return nil
}

func runPresence(cmd *cobra.Command, args []string) error {
	user, err := self()
	if err != nil {
		return err
	}
	resp, err := NewClient(config.ServerAddr).Presence(cmd.Context(), args[0], user, !leaveFlag)
	if err != nil {
		return err
	}
	p := newPrinter(cmd.OutOrStdout(), config.Colours)
	switch {
	case leaveFlag:
		p.success(fmt.Sprintf("%s left %s", user, args[0]))
	case resp.Left != "":
		p.success(fmt.Sprintf("%s moved from %s to %s", user, resp.Left, args[0]))
	default:
		p.success(fmt.Sprintf("%s is in %s", user, args[0]))
	}
	return nil
}

func runTimeline(cmd *cobra.Command, args []string) error {
	owner, err := targetOrSelf(args)
	if err != nil {
		return err
	}
	entries, err := NewClient(config.ServerAddr).Timeline(cmd.Context(), owner)
	if err != nil {
		return err
	}
	newPrinter(cmd.OutOrStdout(), config.Colours).timeline(entries)
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	user, err := targetOrSelf(args)
	if err != nil {
		return err
	}
	record, err := NewClient(config.ServerAddr).Stats(cmd.Context(), user)
	if err != nil {
		return err
	}
	newPrinter(cmd.OutOrStdout(), config.Colours).stats(record)
	return nil
}

func runResetStats(cmd *cobra.Command, args []string) error {
	user, err := targetOrSelf(args)
	if err != nil {
		return err
	}
	record, err := NewClient(config.ServerAddr).ResetStats(cmd.Context(), user)
	if err != nil {
		return err
	}
	p := newPrinter(cmd.OutOrStdout(), config.Colours)
	p.success(fmt.Sprintf("stats of %s reset, previous totals:", user))
	p.stats(record)
	return nil
}
