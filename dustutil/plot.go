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
	"path"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/dustindex"
	"github.com/spatialmodel/dustindex/chart"
	"gonum.org/v1/plot/vg"
)

// programName is written in the header of the output file.
const programName = "dustindex"

func (cfg *Cfg) plot(ctx context.Context) error {
	pc, err := plotConfig(cfg.Viper)
	if err != nil {
		return err
	}
	return Plot(ctx, pc, cfg.Log)
}

// Plot reads the dust index data specified by pc, creates the chart,
// and writes it to pc.OutputFile along with the optional div and static
// image files.
func Plot(ctx context.Context, pc *PlotConfig, log logrus.FieldLogger) error {
	input, err := maybeDownload(ctx, pc.InputFile, log)
	if err != nil {
		return err
	}
	s, sum, err := dustindex.Prepare(input, &pc.Series, log)
	if err != nil {
		return err
	}

	src := chart.NewSource(s)
	var series *charts.Line
	if !pc.SummaryOnly {
		if series, err = chart.SeriesPanel(src, pc.Panel); err != nil {
			return err
		}
	}
	grid := chart.NewGrid(chart.SummaryPanel(sum, pc.Panel), series)
	e, err := grid.Embed(pc.ElementID)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"replaced": e.Replaced,
		"id":       pc.ElementID,
	}).Info("replaced chart element id")

	u := new(uploader)
	defer u.cleanup()
	out, err := u.maybeUpload(pc.OutputFile)
	if err != nil {
		return err
	}
	h := chart.Header{Program: programName, Author: pc.Author, Modified: time.Now()}
	if err = writeFile(out, func(f *os.File) error { return chart.WriteEmbed(f, e.Script, h) }); err != nil {
		return err
	}
	if pc.DivFile != "" {
		div := divMarkup(grid.Assets(), path.Base(pc.OutputFile), e.Div)
		divOut, err := u.maybeUpload(pc.DivFile)
		if err != nil {
			return err
		}
		if err = writeFile(divOut, func(f *os.File) error {
			_, err := f.WriteString(div)
			return err
		}); err != nil {
			return err
		}
	}
	if pc.StaticFile != "" {
		staticOut, err := u.maybeUpload(pc.StaticFile)
		if err != nil {
			return err
		}
		width, height := pixels(pc.Panel.Width), pixels(pc.Panel.Height*2)
		if err = chart.SaveStatic(staticOut, src, sum, width, height); err != nil {
			return err
		}
	}
	if err = u.uploadOutput(ctx, log); err != nil {
		return err
	}
	log.WithField("file", pc.OutputFile).Info("wrote dust index chart")
	return nil
}

// writeFile creates the file at path and fills it using write.
func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dustindex: creating output file: %v", err)
	}
	if err = write(f); err != nil {
		f.Close()
		return fmt.Errorf("dustindex: writing %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("dustindex: closing %s: %v", path, err)
	}
	return nil
}

// divMarkup returns an HTML snippet that loads the charting library
// and the chart script and contains the element the chart is drawn into.
func divMarkup(assets []string, script, div string) string {
	var o string
	for _, a := range assets {
		o += fmt.Sprintf("<script type=\"text/javascript\" src=\"%s\"></script>\n", a)
	}
	o += div + "\n"
	o += fmt.Sprintf("<script type=\"text/javascript\" src=\"%s\"></script>\n", script)
	return o
}

// pixels converts a screen size in pixels at 96 dpi to a drawing length.
func pixels(px int) vg.Length {
	return vg.Length(px) * vg.Inch / 96
}
