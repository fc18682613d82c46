// Command ergmee fits and simulates Equilibrium-Expectation ERGM models
// against Pajek-format networks.
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/grafestim/ergmee/driver"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ergmee",
		Short: "Fit and simulate Equilibrium-Expectation ERGM models",
		Long: `ergmee estimates Exponential Random Graph Model parameters from a Pajek
network via the Equilibrium-Expectation algorithm, and can drive a fitted
or supplied parameter vector forward to simulate new networks.`,
	}

	rootCmd.AddCommand(newEstimateCmd(), newSimulateCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	// Errors that did not come from a task (flag and argument problems)
	// are usage errors.
	var taskErr *driver.TaskError
	if err != nil && !errors.As(err, &taskErr) {
		os.Exit(1)
	}
	os.Exit(driver.ExitCode(err))
}

func newEstimateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Fit model parameters against a loaded network",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			task, _ := cmd.Flags().GetInt("task")
			return driver.RunEstimation(cfgPath, task)
		},
	}
	cmd.Flags().String("config", "", "path to the estimation config file")
	cmd.Flags().Int("task", 0, "task number, seeds the sampler RNG and names output files")
	cmd.MarkFlagRequired("config")
	return cmd
}

func newSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Drive a parameter vector forward to generate synthetic networks",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			task, _ := cmd.Flags().GetInt("task")
			thetaStr, _ := cmd.Flags().GetString("theta")
			theta, err := parseTheta(thetaStr)
			if err != nil {
				return err
			}
			return driver.RunSimulation(cfgPath, task, theta)
		},
	}
	cmd.Flags().String("config", "", "path to the simulation config file")
	cmd.Flags().Int("task", 0, "task number, seeds the sampler RNG and names output files")
	cmd.Flags().String("theta", "", "comma-separated parameter vector, in the config's structParams/attrParams/... order")
	cmd.MarkFlagRequired("config")
	cmd.MarkFlagRequired("theta")
	return cmd
}

func parseTheta(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	theta := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("--theta: invalid value %q", f)
		}
		theta[i] = v
	}
	return theta, nil
}
