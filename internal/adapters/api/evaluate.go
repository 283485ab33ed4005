package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// LoanRequest describes a loan-approval evaluation submission.
type LoanRequest struct {
	ModelPath    string
	Features     []string
	TargetColumn string
	Threshold    float64
}

// FaceRequest describes a facial-recognition evaluation submission. An empty
// ModelPath with UseDefaultModel set runs against the server's pretrained
// model; an empty Augmentations slice leaves the server default in place.
type FaceRequest struct {
	ModelPath       string
	ConfigPath      string
	DatasetZipPath  string
	Threshold       float64
	Augmentations   []string
	UseDefaultModel bool
}

type loanParams struct {
	Features     []string `json:"features"`
	TargetColumn string   `json:"target_column"`
}

// EvaluateLoan uploads the model and configuration to /api/loan/evaluate and
// returns the decoded result. Server-reported failures come back as a
// *ServerError carrying the backend message and traceback.
func (c *Client) EvaluateLoan(ctx context.Context, req *LoanRequest) (*LoanResult, error) {
	params, err := json.Marshal(loanParams{Features: req.Features, TargetColumn: req.TargetColumn})
	if err != nil {
		return nil, fmt.Errorf("failed to encode params: %w", err)
	}

	var out LoanResult
	err = c.postMultipart(ctx, "/api/loan/evaluate", func(mw *multipart.Writer) error {
		if err := writeFilePart(mw, "model_file", req.ModelPath); err != nil {
			return err
		}
		if err := mw.WriteField("params", string(params)); err != nil {
			return err
		}
		return mw.WriteField("threshold", formatThreshold(req.Threshold))
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// EvaluateFace uploads the model, config and optional dataset override to
// /api/face/evaluate and returns the decoded result.
func (c *Client) EvaluateFace(ctx context.Context, req *FaceRequest) (*FaceResult, error) {
	var out FaceResult
	err := c.postMultipart(ctx, "/api/face/evaluate", func(mw *multipart.Writer) error {
		if err := mw.WriteField("use_default_model", strconv.FormatBool(req.UseDefaultModel)); err != nil {
			return err
		}
		if req.ModelPath != "" {
			if err := writeFilePart(mw, "model_file", req.ModelPath); err != nil {
				return err
			}
		}
		if req.ConfigPath != "" {
			if err := writeFilePart(mw, "config_file", req.ConfigPath); err != nil {
				return err
			}
		}
		if req.DatasetZipPath != "" {
			if err := writeFilePart(mw, "dataset_zip", req.DatasetZipPath); err != nil {
				return err
			}
		}
		if len(req.Augmentations) > 0 {
			if err := mw.WriteField("augment", strings.Join(req.Augmentations, ",")); err != nil {
				return err
			}
		}
		return mw.WriteField("threshold", formatThreshold(req.Threshold))
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// postMultipart streams a multipart body through a pipe so large model
// uploads are never buffered in memory.
func (c *Client) postMultipart(ctx context.Context, path string, build func(*multipart.Writer) error, out any) error {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		err := build(mw)
		if err == nil {
			err = mw.Close()
		}
		pw.CloseWithError(err)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, pr)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.do(c.evalc, req, true)
	if err != nil {
		// Unblock the builder goroutine when the request never read the pipe,
		// e.g. a missing session short-circuits before sending.
		pr.CloseWithError(err)
		return err
	}
	defer resp.Body.Close()

	return decodeResponse(resp, out)
}

func writeFilePart(mw *multipart.Writer, field, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", field, err)
	}
	defer f.Close()

	part, err := mw.CreateFormFile(field, filepath.Base(path))
	if err != nil {
		return fmt.Errorf("failed to create form part %s: %w", field, err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("failed to stream %s: %w", field, err)
	}
	return nil
}

func formatThreshold(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
