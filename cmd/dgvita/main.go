package main

import (
	"context"
	"os"
	"time"

	"github.com/dgvita/dgvita/pkg/config"
	"github.com/dgvita/dgvita/pkg/frontend"
	"github.com/dgvita/dgvita/pkg/input"
	"github.com/dgvita/dgvita/pkg/input/sdlpad"
	"github.com/dgvita/dgvita/pkg/logger"
	"github.com/dgvita/dgvita/pkg/monitoring"
	xos "github.com/dgvita/dgvita/pkg/os"
	"github.com/dgvita/dgvita/pkg/service"
	"github.com/dgvita/dgvita/pkg/thread"
	"github.com/dgvita/dgvita/pkg/video"
	flag "github.com/spf13/pflag"
)

var Version = "?"

// tickMs is the frame time of a 35 Hz engine.
const tickMs = 1000 / 35

func run() {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	conf := config.Default()
	conf.WithFlags(fs)
	frames := fs.Int("frames", 0, "Stop after this many frames, 0 runs until exit")
	demo := fs.Bool("demo", false, "Drive the input with a scripted controller")
	_ = fs.Parse(os.Args[1:])

	log := logger.NewConsole(false, "dgvita", false)
	if err := config.LoadConfig(&conf, config.ConfigPath()); err != nil {
		log.Fatal().Err(err).Msg("config")
	}
	// flags win over the file
	_ = fs.Parse(os.Args[1:])
	if err := conf.Validate(); err != nil {
		log.Fatal().Err(err).Msg("config")
	}
	log = logger.NewConsole(conf.Debug, "dgvita", conf.NoColor)
	log.Info().Msgf("version %v", Version)
	log.Debug().Msgf("config: %+v", conf)

	lock, err := xos.NewFileLock(conf.LockFile)
	if err != nil {
		log.Fatal().Err(err).Msg("lock")
	}
	if err = lock.TryLock(); err != nil {
		log.Fatal().Err(err).Msgf("the controller is busy, lock: %v", lock.Path())
	}
	defer func() { _ = lock.Unlock() }()

	var (
		dev   video.Device
		fb    *video.Framebuffer
		ctrl  input.Controller
		pad   *sdlpad.Pad
		clock frontend.Clock
	)
	if conf.Video.Headless {
		fb = video.NewFramebuffer()
		dev, ctrl, clock = fb, &demoPad{}, frontend.NewWallClock()
	} else {
		pad = sdlpad.New(log.Tag("pad"))
		dev, ctrl, clock = video.NewSDL(log.Tag("sdl")), pad, frontend.SDLClock{}
		if *demo {
			ctrl = &demoPad{}
		}
	}

	fe, err := frontend.New(conf, ctrl, dev, log, frontend.WithClock(clock))
	if err != nil {
		log.Fatal().Err(err).Msg("frontend")
	}
	if err = thread.CallErr(fe.Init); err != nil {
		log.Fatal().Err(err).Msg("init")
	}
	// the scripted input still needs the pad for window events
	pump := pad != nil && *demo
	if pump {
		if err = thread.CallErr(pad.Init); err != nil {
			log.Warn().Err(err).Msg("pad")
		}
	}

	services := service.Group{}
	if conf.Monitoring.IsEnabled() {
		services.Add(monitoring.New(conf.Monitoring, fe.Stats, log.Tag("monitoring")))
	}
	services.Start()

	done := xos.ExpectTermination()
	eng := newEngine(conf.Video.BufferWidth, conf.Video.BufferHeight)

loop:
	for n := 0; *frames == 0 || n < *frames; n++ {
		select {
		case <-done:
			log.Info().Msg("terminated")
			break loop
		default:
		}

		start := fe.GetTicksMs()
		for {
			pressed, key, ok := fe.GetKey()
			if !ok {
				break
			}
			eng.key(pressed, key)
		}
		if eng.quit {
			log.Info().Msg("escape")
			break
		}

		eng.tick()
		thread.Call(func() {
			err = fe.DrawFrame(eng.buf)
			if pump {
				_, _ = pad.Peek()
			}
		})
		if err != nil {
			log.Error().Err(err).Msg("frame")
			break
		}
		if pad != nil && pad.QuitRequested() {
			log.Info().Msg("window closed")
			break
		}
		fe.SetWindowTitle(eng.title())

		if took := fe.GetTicksMs() - start; took < tickMs {
			fe.SleepMs(tickMs - took)
		}
	}

	stats := fe.Stats()
	log.Info().Msgf("frames: %v, key events: %v, dropped: %v, missed reads: %v",
		stats.Frames, stats.Input.Events, stats.Input.Dropped, stats.Input.Misses)

	if fb != nil && conf.Video.Screenshot != "" {
		if err = fb.SavePNG(conf.Video.Screenshot); err != nil {
			log.Error().Err(err).Msg("screenshot")
		} else {
			log.Info().Msgf("screenshot: %v", conf.Video.Screenshot)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err = services.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
	thread.Call(func() {
		if pad != nil {
			pad.Close()
		}
		_ = fe.Close()
	})
}

func main() {
	thread.Main(run)
}
