package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pkgErrors "github.com/vogiaan1904/docqueue/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   int
	}{
		{name: "http error", err: pkgErrors.NewHTTPError(1001, "conflict", http.StatusConflict), wantStatus: http.StatusConflict, wantCode: 1001},
		{name: "default status", err: pkgErrors.NewHTTPError(1002, "bad", 0), wantStatus: http.StatusBadRequest, wantCode: 1002},
		{name: "unknown error", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCode: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			statusCode, err := Error(rec, tt.err)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, statusCode)
			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp Resp
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.ErrorCode)
		})
	}
}

func TestParseGRPCError(t *testing.T) {
	err := ParseGRPCError(pkgErrors.NewGRPCError("DQ001", "already registered", codes.AlreadyExists))
	assert.Equal(t, codes.AlreadyExists, status.Code(err))
	assert.Contains(t, status.Convert(err).Message(), "DQ001")

	err = ParseGRPCError(errors.New("boom"))
	assert.Equal(t, codes.Internal, status.Code(err))
}
