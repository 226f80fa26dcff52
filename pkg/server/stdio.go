package server

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/matzehuels/plotsvg/pkg/errors"
	"github.com/matzehuels/plotsvg/pkg/output"
	"github.com/matzehuels/plotsvg/pkg/pipeline"
)

// StdioRequest is one input line of the stdio transport.
type StdioRequest struct {
	ID     json.RawMessage `json:"id,omitempty"`
	Tool   string          `json:"tool"`
	Params json.RawMessage `json:"params"`
}

// StdioResponse is one output line. Exactly one of Result and Error is set.
type StdioResponse struct {
	ID     json.RawMessage `json:"id,omitempty"`
	Result *output.Output  `json:"result,omitempty"`
	Error  *ErrorBody      `json:"error,omitempty"`
}

// ServeStdio reads one JSON request per line from in and writes one JSON
// response per line to out, in order. Blank lines are skipped. A line longer
// than the body limit is answered with INVALID_INPUT and the session goes
// on. It returns nil at end of input and ctx.Err() when canceled.
func (s *Server) ServeStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	lines := make(chan stdioLine)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		r := bufio.NewReaderSize(in, 64*1024)
		for {
			line, err := readLine(r, s.maxBody())
			if len(line.data) > 0 || line.tooLong {
				select {
				case lines <- line:
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				if err != io.EOF {
					readErr <- err
				}
				return
			}
		}
	}()

	enc := json.NewEncoder(out)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					return err
				default:
					return ctx.Err()
				}
			}
			var resp StdioResponse
			switch {
			case line.tooLong:
				resp.Error = &ErrorBody{
					Code:    errors.ErrCodeInvalidInput,
					Message: fmt.Sprintf("request line exceeds %d bytes", s.maxBody()),
				}
			case len(bytes.TrimSpace(line.data)) == 0:
				continue
			default:
				resp = s.handleLine(ctx, line.data)
			}
			if err := enc.Encode(resp); err != nil {
				return err
			}
		}
	}
}

type stdioLine struct {
	data    []byte
	tooLong bool
}

// readLine reads up to the next newline. Bytes past limit are discarded and
// the line is flagged tooLong.
func readLine(r *bufio.Reader, limit int64) (stdioLine, error) {
	var line stdioLine
	for {
		chunk, err := r.ReadSlice('\n')
		if !line.tooLong {
			if int64(len(line.data)+len(chunk)) > limit+1 {
				line.tooLong = true
				line.data = nil
			} else {
				line.data = append(line.data, chunk...)
			}
		}
		if err == bufio.ErrBufferFull {
			continue
		}
		line.data = bytes.TrimRight(line.data, "\r\n")
		return line, err
	}
}

func (s *Server) handleLine(ctx context.Context, line []byte) StdioResponse {
	var req StdioRequest
	if err := json.Unmarshal(line, &req); err != nil {
		return StdioResponse{Error: &ErrorBody{
			Code:    errors.ErrCodeInvalidInput,
			Message: "malformed request line: " + err.Error(),
		}}
	}
	resp := StdioResponse{ID: req.ID}
	res, err := s.Runner.Execute(ctx, pipeline.Request{Tool: req.Tool, Params: req.Params})
	if err != nil {
		_, body := s.errorBody(err)
		resp.Error = &body
		return resp
	}
	resp.Result = &res.Output
	return resp
}
