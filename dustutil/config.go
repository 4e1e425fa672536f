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

package dustutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lnashier/viper"
	"github.com/spatialmodel/dustindex"
	"github.com/spatialmodel/dustindex/chart"
	"github.com/spatialmodel/dustindex/cloud"
	"github.com/spf13/cast"
)

// PlotConfig holds the settings of a single run of the plot command.
type PlotConfig struct {
	// Series holds the settings for reading and preparing the data.
	Series dustindex.Config

	// InputFile is the location of the netCDF file, with the
	// date wildcards already filled in.
	InputFile string

	OutputFile, DivFile, StaticFile string

	// ElementID replaces the generated id of the chart.
	ElementID string

	Author string

	// SummaryOnly leaves the time series panel out of the chart.
	SummaryOnly bool

	Panel chart.PanelOptions
}

// plotConfig unmarshals a viper configuration for the plot command.
func plotConfig(cfg *viper.Viper) (*PlotConfig, error) {
	pc := &PlotConfig{
		Series: dustindex.Config{
			Date: cfg.GetString("Date"),
			Variables: dustindex.Variables{
				Low:   cfg.GetString("Variables.Low"),
				Total: cfg.GetString("Variables.Total"),
				Time:  cfg.GetString("Variables.Time"),
			},
		},
		ElementID: os.ExpandEnv(cfg.GetString("ElementID")),
		Author:    os.ExpandEnv(cfg.GetString("Author")),
		Panel:     chart.DefaultPanelOptions,
	}
	var err error
	if pc.Series.MissingThreshold, err = cast.ToFloat64E(cfg.Get("MissingThreshold")); err != nil {
		return nil, fmt.Errorf("dustindex: invalid MissingThreshold: %v", err)
	}
	if pc.Series.Reverse, err = cast.ToBoolE(cfg.Get("Reverse")); err != nil {
		return nil, fmt.Errorf("dustindex: invalid Reverse: %v", err)
	}
	if pc.SummaryOnly, err = cast.ToBoolE(cfg.Get("SummaryOnly")); err != nil {
		return nil, fmt.Errorf("dustindex: invalid SummaryOnly: %v", err)
	}
	if pc.Panel.SummaryMax, err = cast.ToFloat64E(cfg.Get("SummaryMax")); err != nil {
		return nil, fmt.Errorf("dustindex: invalid SummaryMax: %v", err)
	}
	if pc.Panel.Width, err = checkSize("PlotWidth", cfg.Get("PlotWidth")); err != nil {
		return nil, err
	}
	if pc.Panel.Height, err = checkSize("PlotHeight", cfg.Get("PlotHeight")); err != nil {
		return nil, err
	}
	if pc.Panel.SummaryMax <= 0 {
		return nil, fmt.Errorf("dustindex: SummaryMax must be greater than zero but is %g", pc.Panel.SummaryMax)
	}

	if _, err = dustindex.ParseDate(pc.Series.Date); err != nil {
		return nil, err
	}
	if pc.InputFile, err = dustindex.InputPath(os.ExpandEnv(cfg.GetString("InputFile")), pc.Series.Date); err != nil {
		return nil, err
	}
	if pc.OutputFile, err = checkOutputFile("OutputFile", cfg.GetString("OutputFile")); err != nil {
		return nil, err
	}
	if f := cfg.GetString("DivFile"); f != "" {
		if pc.DivFile, err = checkOutputFile("DivFile", f); err != nil {
			return nil, err
		}
	}
	if f := cfg.GetString("StaticFile"); f != "" {
		if pc.StaticFile, err = checkOutputFile("StaticFile", f); err != nil {
			return nil, err
		}
		if err = checkStaticFormat(pc.StaticFile); err != nil {
			return nil, err
		}
	}
	if pc.ElementID == "" {
		return nil, fmt.Errorf("dustindex: you need to specify the ElementID configuration variable")
	}
	return pc, nil
}

// checkSize makes sure that a panel dimension is a positive integer.
func checkSize(name string, v interface{}) (int, error) {
	i, err := cast.ToIntE(v)
	if err != nil {
		return 0, fmt.Errorf("dustindex: invalid %s: %v", name, err)
	}
	if i <= 0 {
		return 0, fmt.Errorf("dustindex: %s must be greater than zero but is %d", name, i)
	}
	return i, nil
}

// checkOutputFile expands any environment variables in f and makes sure
// that the location it points to can be written to.
func checkOutputFile(name, f string) (string, error) {
	if f == "" {
		return "", fmt.Errorf(`dustindex: you need to specify the %s configuration variable (for example: %s="DustIndexPlot.js")`, name, name)
	}
	f = os.ExpandEnv(f)
	if cloud.IsBlob(f) {
		bucketName, _, err := cloud.SplitBlob(f)
		if err != nil {
			return f, fmt.Errorf("dustindex: error when checking %s location: %v", name, err)
		}
		bucket, err := cloud.OpenBucket(context.TODO(), bucketName)
		if err != nil {
			return f, fmt.Errorf("dustindex: error when checking %s location: %v", name, err)
		}
		bucket.Close()
		return f, nil
	}
	outdir := filepath.Dir(f)
	if _, err := os.Stat(outdir); err != nil {
		return f, fmt.Errorf("dustindex: the %s directory doesn't exist: %v", name, err)
	}
	return f, nil
}

// checkStaticFormat makes sure the static image can be saved in the
// format implied by its file extension.
func checkStaticFormat(f string) error {
	switch ext := filepath.Ext(f); ext {
	case ".svg", ".png", ".pdf", ".eps", ".jpg", ".jpeg", ".tif", ".tiff":
		return nil
	default:
		return fmt.Errorf("dustindex: unsupported StaticFile format %q", ext)
	}
}
