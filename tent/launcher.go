package tent

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/xi2/xz"
)

var ErrUnsupportedScheme = errors.New("unsupported script location")

type objectGetter interface {
	GetObject(*s3.GetObjectInput) (*s3.GetObjectOutput, error)
}

// launcher replays a script of console commands. The script lives on disk
// or in S3, and a .xz suffix means it is compressed.
type launcher struct {
	source url.URL
	s3     objectGetter
	sitter *sitter
}

func NewLauncher(source string, sitter *sitter) (*launcher, error) {
	if source == "" {
		return nil, fmt.Errorf("no script given")
	}
	parsed, err := url.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("bad script location %q: %w", source, err)
	}
	parsed.Path = strings.Trim(parsed.Path, "/")
	if parsed.Scheme == "" || parsed.Scheme == "file" {
		parsed.Path = source
		if parsed.Scheme == "file" {
			parsed.Path = strings.TrimPrefix(source, "file://")
		}
	}
	return &launcher{source: *parsed, sitter: sitter}, nil
}

func (t *launcher) AwsInit() {
	sess := session.Must(session.NewSessionWithOptions(session.Options{
		SharedConfigState: session.SharedConfigEnable,
	}))
	if region := os.Getenv("AWS_REGION"); region != "" {
		sess.Config.Region = aws.String(region)
	}
	t.s3 = s3.New(sess)
}

func (t *launcher) Run() error {
	script, err := t.open()
	if err != nil {
		return err
	}
	defer script.Close()
	var in io.Reader = script
	if strings.HasSuffix(t.source.Path, ".xz") {
		in, err = xz.NewReader(script, 0)
		if err != nil {
			return fmt.Errorf("could not decompress %s: %w", t.source.String(), err)
		}
	}
	slog.Info("Replaying script", "source", t.source.String())
	return t.sitter.Run(in)
}

func (t *launcher) open() (io.ReadCloser, error) {
	switch t.source.Scheme {
	case "", "file":
		file, err := os.Open(t.source.Path)
		if err != nil {
			return nil, fmt.Errorf("could not open script: %w", err)
		}
		return file, nil
	case "s3":
		if t.s3 == nil {
			t.AwsInit()
		}
		response, err := t.s3.GetObject(&s3.GetObjectInput{
			Bucket: aws.String(t.source.Host),
			Key:    aws.String(t.source.Path),
		})
		if err != nil {
			return nil, fmt.Errorf("could not download script: %w", err)
		}
		return response.Body, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedScheme, t.source.Scheme)
}
