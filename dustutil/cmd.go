/*
Copyright © 2018 the InMAP authors.
This file is part of dustindex.

dustindex is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

dustindex is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with dustindex.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package dustutil contains the command-line interface of dustindex.
package dustutil

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/dustindex"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
type Cfg struct {
	*viper.Viper

	// Root is the main command.
	Root *cobra.Command

	// Log receives status messages.
	Log *logrus.Logger

	versionCmd, plotCmd *cobra.Command
}

type option struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

// InitializeConfig creates the commands and configuration options.
func InitializeConfig() *Cfg {
	cfg := &Cfg{
		Viper: viper.New(),
		Log:   logrus.New(),
	}
	cfg.Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339Nano,
		DisableSorting:  true,
	})

	cfg.Root = &cobra.Command{
		Use:   "dustindex",
		Short: "Plot lidar dust index measurements.",
		Long: `dustindex reads the low-layer and total dust indices measured by a Raman
lidar from a netCDF quicklook file and writes an interactive chart of their
means and time series that can be embedded in a web page. Running dustindex
without a subcommand is the same as running 'dustindex plot'.

Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'DUSTINDEX_var' where 'var' is the
name of the variable to be set, with '.' replaced by '_'.
Refer to https://github.com/spf13/viper for additional configuration information.`,
		DisableAutoGenTag: true,
		PersistentPreRunE: func(*cobra.Command, []string) error { return cfg.setConfig() },
		RunE: func(cmd *cobra.Command, args []string) error {
			return cfg.plot(context.TODO())
		},
	}

	cfg.versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Long:  "version prints the version number of this version of dustindex.",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("dustindex v%s\n", dustindex.Version)
		},
		DisableAutoGenTag: true,
	}

	cfg.plotCmd = &cobra.Command{
		Use:   "plot",
		Short: "Create the dust index chart.",
		Long: `plot reads the dust index data for the configured date, calculates the
mean of each channel, and writes the chart as a javascript file whose
element id has been replaced with a fixed name.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cfg.plot(context.TODO())
		},
		DisableAutoGenTag: true,
	}

	cfg.Root.AddCommand(cfg.versionCmd)
	cfg.Root.AddCommand(cfg.plotCmd)

	persistent := cfg.Root.PersistentFlags()
	// Plot options are shared by the plot command and the root command,
	// which runs the plot when no subcommand is given.
	plotFlags := []*pflag.FlagSet{cfg.plotCmd.Flags(), cfg.Root.Flags()}
	options := []option{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{persistent},
		},
		{
			name: "LogLevel",
			usage: `
              LogLevel is the minimum level of log messages that are shown.
              It can be one of panic, fatal, error, warn, info, debug, or trace.`,
			defaultVal: "info",
			flagsets:   []*pflag.FlagSet{persistent},
		},
		{
			name: "Date",
			usage: `
              Date is the date of the measurements that should be plotted, in the
              format YYYYMMDD.`,
			shorthand:  "d",
			defaultVal: "20171111",
			flagsets:   plotFlags,
		},
		{
			name: "InputFile",
			usage: `
              InputFile is the location of the netCDF lidar quicklook file.
              [YYMM] is replaced by the two-digit year and month of Date,
              [YYMMDD] by the two-digit year, month, and day, and [DATE] by the
              whole date. The location can include environment variables, and it
              can be an http(s) URL or a blob storage location (gs://, s3://, or file://).`,
			defaultVal: dustindex.DefaultInputTemplate,
			flagsets:   plotFlags,
		},
		{
			name: "Variables.Low",
			usage: `
              Variables.Low is the name of the low-layer dust index variable.`,
			defaultVal: dustindex.DefaultVariables.Low,
			flagsets:   plotFlags,
		},
		{
			name: "Variables.Total",
			usage: `
              Variables.Total is the name of the total-column dust index variable.`,
			defaultVal: dustindex.DefaultVariables.Total,
			flagsets:   plotFlags,
		},
		{
			name: "Variables.Time",
			usage: `
              Variables.Time is the name of the variable holding the time of each
              measurement in seconds since midnight.`,
			defaultVal: dustindex.DefaultVariables.Time,
			flagsets:   plotFlags,
		},
		{
			name: "MissingThreshold",
			usage: `
              MissingThreshold is the value above which measurements are treated
              as missing.`,
			defaultVal: dustindex.MissingThreshold,
			flagsets:   plotFlags,
		},
		{
			name: "Reverse",
			usage: `
              Reverse specifies whether the order of the measurements should be
              reversed after they are read.`,
			defaultVal: true,
			flagsets:   plotFlags,
		},
		{
			name: "OutputFile",
			usage: `
              OutputFile is the location where the javascript chart code should be
              written. It can include environment variables and can be a blob
              storage location.`,
			shorthand:  "o",
			defaultVal: "DustIndexPlot.js",
			flagsets:   plotFlags,
		},
		{
			name: "DivFile",
			usage: `
              DivFile, if specified, is the location where an HTML snippet should be
              written that loads the charting library and contains the element the
              chart is drawn into.`,
			defaultVal: "",
			flagsets:   plotFlags,
		},
		{
			name: "StaticFile",
			usage: `
              StaticFile, if specified, is the location where a non-interactive image
              of the time series should be saved. The format is determined by the
              file extension (e.g., .svg, .png, or .pdf).`,
			defaultVal: "",
			flagsets:   plotFlags,
		},
		{
			name: "ElementID",
			usage: `
              ElementID is the id of the web page element that the chart is drawn into.
              It replaces the id that is generated for the chart.`,
			defaultVal: "AvailabilityPlotElementID",
			flagsets:   plotFlags,
		},
		{
			name: "Author",
			usage: `
              Author is written in the header of the output file.`,
			defaultVal: "the InMAP authors",
			flagsets:   plotFlags,
		},
		{
			name: "SummaryOnly",
			usage: `
              SummaryOnly specifies whether only the panel with the mean dust indices
              should be included in the chart, leaving out the time series panel.`,
			defaultVal: false,
			flagsets:   plotFlags,
		},
		{
			name: "SummaryMax",
			usage: `
              SummaryMax is the upper limit of the axis of the mean dust index panel.`,
			defaultVal: 0.01,
			flagsets:   plotFlags,
		},
		{
			name: "PlotWidth",
			usage: `
              PlotWidth is the width of each chart panel in pixels.`,
			defaultVal: 1200,
			flagsets:   plotFlags,
		},
		{
			name: "PlotHeight",
			usage: `
              PlotHeight is the height of each chart panel in pixels.`,
			defaultVal: 300,
			flagsets:   plotFlags,
		},
	}

	// Set the prefix for configuration environment variables.
	cfg.SetEnvPrefix("DUSTINDEX")
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch v := option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, v, option.usage)
				} else {
					set.StringP(option.name, option.shorthand, v, option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, v, option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, v, option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, v, option.usage)
				} else {
					set.IntP(option.name, option.shorthand, v, option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, v, option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, v, option.usage)
				}
			default:
				panic("invalid argument type")
			}
			cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
	return cfg
}

// setConfig finds and reads in the configuration file, if there is one,
// and sets the log level.
func (cfg *Cfg) setConfig() error {
	if cfgpath := cfg.GetString("config"); cfgpath != "" {
		cfg.SetConfigFile(cfgpath)
		if err := cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("dustindex: problem reading configuration file: %v", err)
		}
	}
	level, err := logrus.ParseLevel(cfg.GetString("LogLevel"))
	if err != nil {
		return fmt.Errorf("dustindex: invalid LogLevel: %v", err)
	}
	cfg.Log.SetLevel(level)
	return nil
}
