package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	admincmd "github.com/medvault/medvault-cli/cmd/admin"
	doctorcmd "github.com/medvault/medvault-cli/cmd/doctor"
	patientcmd "github.com/medvault/medvault-cli/cmd/patient"
	sessioncmd "github.com/medvault/medvault-cli/cmd/session"
	systemcmd "github.com/medvault/medvault-cli/cmd/system"
	watchcmd "github.com/medvault/medvault-cli/cmd/watch"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "medvault",
	Short: "MedVault healthcare appointment client.",
	Long: `MedVault is a terminal client for the MedVault healthcare platform.
It covers the patient, doctor and admin workflows: appointments, time slots,
emergency requests, document permissions, prescriptions and health records.`,
}

func Execute() {
	rootCmd.SilenceErrors = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, renderError(err))
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "medvault.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(sessioncmd.NewSessionCommand())
	rootCmd.AddCommand(doctorcmd.NewDoctorCommand())
	rootCmd.AddCommand(patientcmd.NewPatientCommand())
	rootCmd.AddCommand(admincmd.NewAdminCommand())
	rootCmd.AddCommand(watchcmd.NewWatchCommand())
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
}
