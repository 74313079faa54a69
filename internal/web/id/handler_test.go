package id

import (
	"encoding/json"
	"errors"
	"go-hailstorm/internal/domain"
	"go-hailstorm/internal/errs"
	"go-hailstorm/internal/pkg/id_generator"
	idsvcmocks "go-hailstorm/internal/service/id/mocks"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type result[T any] struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data T      `json:"data"`
}

func newServer(svc *idsvcmocks.MockService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	server := gin.New()
	NewHandler(svc).RegisterRoutes(server)
	return server
}

func testID(value uint64) domain.ID {
	parts := id_generator.Decompose(value)
	return domain.ID{
		Value:     value,
		Timestamp: parts.Timestamp,
		Time:      parts.Time,
		NodeID:    parts.NodeID,
		Sequence:  parts.Sequence,
	}
}

func TestHandler_Next(t *testing.T) {
	value := id_generator.Compose(1000, 5, 2)
	testCases := []struct {
		name     string
		mock     func(svc *idsvcmocks.MockService)
		wantCode int
		wantBody result[ID]
	}{
		{
			name: "成功",
			mock: func(svc *idsvcmocks.MockService) {
				svc.EXPECT().Generate(gomock.Any()).Return(testID(value), nil)
			},
			wantCode: http.StatusOK,
			wantBody: result[ID]{Data: ID{
				ID:        "4194324482",
				Timestamp: 1000,
				Time:      "2018-01-01T00:00:01Z",
				NodeID:    5,
				Sequence:  2,
			}},
		},
		{
			name: "时钟回拨",
			mock: func(svc *idsvcmocks.MockService) {
				svc.EXPECT().Generate(gomock.Any()).Return(domain.ID{}, errs.ErrClockRegression)
			},
			wantCode: http.StatusServiceUnavailable,
			wantBody: result[ID]{Code: ClockRegressionCode, Msg: "时钟回拨，请稍后重试"},
		},
		{
			name: "系统错误",
			mock: func(svc *idsvcmocks.MockService) {
				svc.EXPECT().Generate(gomock.Any()).Return(domain.ID{}, errors.New("mock error"))
			},
			wantCode: http.StatusInternalServerError,
			wantBody: result[ID]{Code: SystemErrorCode, Msg: "系统错误"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := idsvcmocks.NewMockService(ctrl)
			tc.mock(svc)

			recorder := httptest.NewRecorder()
			newServer(svc).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/ids/next", nil))
			assert.Equal(t, tc.wantCode, recorder.Code)

			var got result[ID]
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
			assert.Equal(t, tc.wantBody, got)
		})
	}
}

func TestHandler_BatchGenerate(t *testing.T) {
	testCases := []struct {
		name     string
		body     string
		mock     func(svc *idsvcmocks.MockService)
		wantCode int
		wantBody result[BatchGenerateResp]
	}{
		{
			name: "成功",
			body: `{"count":2}`,
			mock: func(svc *idsvcmocks.MockService) {
				svc.EXPECT().BatchGenerate(gomock.Any(), 2).Return([]domain.ID{testID(100), testID(101)}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: result[BatchGenerateResp]{Data: BatchGenerateResp{IDs: []string{"100", "101"}}},
		},
		{
			name: "数量非法",
			body: `{"count":0}`,
			mock: func(svc *idsvcmocks.MockService) {
				svc.EXPECT().BatchGenerate(gomock.Any(), 0).Return(nil, errs.ErrInvalidParameter)
			},
			wantCode: http.StatusBadRequest,
			wantBody: result[BatchGenerateResp]{Code: InvalidParamCode, Msg: "参数错误"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := idsvcmocks.NewMockService(ctrl)
			tc.mock(svc)

			recorder := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/ids/batch", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			newServer(svc).ServeHTTP(recorder, req)
			assert.Equal(t, tc.wantCode, recorder.Code)

			var got result[BatchGenerateResp]
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
			assert.Equal(t, tc.wantBody, got)
		})
	}
}

func TestHandler_Parse(t *testing.T) {
	value := id_generator.Compose(1000, 5, 2)
	testCases := []struct {
		name     string
		path     string
		mock     func(svc *idsvcmocks.MockService)
		wantCode int
		wantBody result[ID]
	}{
		{
			name: "成功",
			path: "/ids/4194324482",
			mock: func(svc *idsvcmocks.MockService) {
				svc.EXPECT().Parse(gomock.Any(), value).Return(testID(value), nil)
			},
			wantCode: http.StatusOK,
			wantBody: result[ID]{Data: ID{
				ID:        "4194324482",
				Timestamp: 1000,
				Time:      "2018-01-01T00:00:01Z",
				NodeID:    5,
				Sequence:  2,
			}},
		},
		{
			name:     "不是数字",
			path:     "/ids/abc",
			mock:     func(svc *idsvcmocks.MockService) {},
			wantCode: http.StatusBadRequest,
			wantBody: result[ID]{Code: InvalidParamCode, Msg: "参数错误"},
		},
		{
			name: "ID为0",
			path: "/ids/0",
			mock: func(svc *idsvcmocks.MockService) {
				svc.EXPECT().Parse(gomock.Any(), uint64(0)).Return(domain.ID{}, errs.ErrInvalidParameter)
			},
			wantCode: http.StatusBadRequest,
			wantBody: result[ID]{Code: InvalidParamCode, Msg: "参数错误"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := idsvcmocks.NewMockService(ctrl)
			tc.mock(svc)

			recorder := httptest.NewRecorder()
			newServer(svc).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, tc.path, nil))
			assert.Equal(t, tc.wantCode, recorder.Code)

			var got result[ID]
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
			assert.Equal(t, tc.wantBody, got)
		})
	}
}

func TestHandler_Node(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := idsvcmocks.NewMockService(ctrl)
	svc.EXPECT().Node(gomock.Any()).Return(domain.Node{
		NodeID:    7,
		Kind:      domain.GeneratorKindHailstorm,
		Epoch:     time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC),
		BitsEpoch: 42,
		BitsNode:  10,
		BitsSeq:   12,
	})

	recorder := httptest.NewRecorder()
	newServer(svc).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/node", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)

	var got result[Node]
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	assert.Equal(t, Node{
		NodeID:    7,
		Kind:      "hailstorm",
		Epoch:     "2018-01-01T00:00:00Z",
		BitsEpoch: 42,
		BitsNode:  10,
		BitsSeq:   12,
	}, got.Data)
}
