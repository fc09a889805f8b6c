/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package main

import (
	"flag"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mkopp/bitking/internal/attacks"
	"github.com/mkopp/bitking/internal/board"
	"github.com/mkopp/bitking/internal/config"
	"github.com/mkopp/bitking/internal/logging"
	"github.com/mkopp/bitking/internal/movegen"
)

var out = message.NewPrinter(language.German)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "info", "standard log level\n(critical|error|warning|notice|info|debug)")
	fen := flag.String("fen", board.StartFen, "fen of the position to run perft on")
	depth := flag.Int("perft", 5, "perft depth")
	cpuProfile := flag.String("cpuprofile", "", "if set, writes a pprof CPU profile to this directory while perft runs")
	flag.Parse()

	// set config file before config.Setup() is called - otherwise the
	// default will be used.
	config.ConfFile = *configFile
	config.Setup()

	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}

	// resetting log level on standard log - required as most packages
	// include the standard logger as a global var and therefore even
	// before main() is called. These loggers start with the default
	// log level and must be reset to the actual level required.
	logging.GetLog()

	attacks.Init()

	if *cpuProfile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*cpuProfile)).Stop()
	}

	if *depth <= 0 {
		out.Println("perft depth must be >= 1")
		return
	}

	var perftTest movegen.Perft
	for i := 1; i <= *depth; i++ {
		perftTest.StartPerft(*fen, i)
	}
}
