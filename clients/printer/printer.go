package printer

import (
	"context"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/hennedo/escpos"

	"printfeed/clients"
	"printfeed/core"
	"printfeed/models"
	"printfeed/utils"
)

const (
	dialTimeout  = 5 * time.Second
	writeTimeout = 30 * time.Second
)

// PrinterClient implements clients.PrinterClient against a networked
// ESC/POS thermal printer. A fresh TCP connection is opened per job and
// closed when the job is done - the printer is a shared device and holding
// the socket between receipts starves other clients.
type PrinterClient struct {
	addr       string
	width      int
	httpClient *http.Client
}

// NewPrinterClient creates a printer client for the given host:port
// address. width is the printable character width used only for logging
// context here - wrapping happens in the formatter.
func NewPrinterClient(addr string, width int) clients.PrinterClient {
	utils.AssertInvariant(addr != "", "printer address cannot be empty")
	utils.AssertInvariant(width > 0, "printer width must be positive")

	return &PrinterClient{
		addr:  addr,
		width: width,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// PrintReceipt connects to the printer, renders the job line by line and
// cuts. Single best-effort send: a failure is returned to the caller and
// the job is discarded, never retried or queued.
func (c *PrinterClient) PrintReceipt(ctx context.Context, job models.ReceiptJob) error {
	dialer := net.Dialer{Timeout: dialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", c.addr)
	if err != nil {
		return fmt.Errorf("%w: could not connect to %s: %v", core.ErrPrinterUnavailable, c.addr, err)
	}
	defer conn.Close()

	if err := conn.SetDeadline(time.Now().Add(writeTimeout)); err != nil {
		return fmt.Errorf("%w: could not set write deadline: %v", core.ErrPrinterProtocol, err)
	}

	ew := &errWriter{w: conn}
	p := escpos.New(ew)

	for _, line := range job.Lines {
		switch line.Kind {
		case models.ReceiptLineImage:
			c.renderImage(ctx, p, line)
		case models.ReceiptLineText:
			p.Bold(line.Bold)
			p.Write(line.Text)
			p.LineFeed()
		}
	}

	if job.Cut {
		p.PrintAndCut()
	} else {
		p.Print()
	}

	if ew.err != nil {
		return fmt.Errorf("%w: writing job to %s: %v", core.ErrPrinterProtocol, c.addr, ew.err)
	}
	return nil
}

// renderImage fetches, downscales and prints a referenced image. Image
// failures degrade to a skipped line - a receipt without the avatar is
// still a receipt.
func (c *PrinterClient) renderImage(ctx context.Context, p *escpos.Escpos, line models.ReceiptLine) {
	img, err := c.fetchImage(ctx, line.ImageURL)
	if err != nil {
		log.Printf("⚠️ Could not fetch receipt image %s: %v", line.ImageURL, err)
		return
	}

	switch line.ImageKind {
	case models.ReceiptImageAvatar:
		img = scaleToSquare(img, avatarSizePx)
	default:
		img = scaleToWidth(img, maxRasterWidthPx)
	}

	p.PrintImage(img)
	p.LineFeed()
}

// errWriter records the first write error so every escpos call can stay a
// plain statement and the failure is classified once at the end of the job.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	if err != nil {
		ew.err = err
	}
	return n, err
}

// Read satisfies io.ReadWriter for the escpos driver; the dispatch path
// never reads printer status.
func (ew *errWriter) Read(p []byte) (int, error) {
	return 0, io.EOF
}
