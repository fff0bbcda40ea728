package thumbnail

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// frameGrabber extracts the first readable frame of a video by shelling out
// to ffmpeg. The binary is optional: when it is missing, video assets fall
// back to the generic file icon.
type frameGrabber struct {
	binary string
}

func newFrameGrabber() *frameGrabber {
	return &frameGrabber{binary: "ffmpeg"}
}

// IsAvailable checks if ffmpeg is installed and on the PATH
func (g *frameGrabber) IsAvailable() bool {
	_, err := exec.LookPath(g.binary)
	return err == nil
}

// FirstFrame writes the first frame of the video to a temporary PNG and
// returns its path with a cleanup func. The caller owns the cleanup.
func (g *frameGrabber) FirstFrame(ctx context.Context, videoPath string) (string, func(), error) {
	dir, err := os.MkdirTemp("", "cura-frame-*")
	if err != nil {
		return "", nil, err
	}
	cleanup := func() { os.RemoveAll(dir) }

	framePath := filepath.Join(dir, "frame.png")
	args := []string{
		"-y",
		"-loglevel", "error",
		"-i", videoPath,
		"-frames:v", "1",
		framePath,
	}

	cmd := exec.CommandContext(ctx, g.binary, args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("ffmpeg: %v: %s", err, output)
	}

	if _, err := os.Stat(framePath); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("ffmpeg produced no frame for %s", videoPath)
	}

	return framePath, cleanup, nil
}
