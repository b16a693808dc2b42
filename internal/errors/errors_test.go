package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ErrorsTestSuite 错误包测试套件
type ErrorsTestSuite struct {
	suite.Suite
}

// 测试创建新错误
func (suite *ErrorsTestSuite) TestNew() {
	err := New(ErrInvalidWordFormat)
	suite.NotNil(err)
	suite.Equal(ErrInvalidWordFormat, err.Code)
	suite.Equal("单词格式无效，必须是5个大写字母", err.Message)
	suite.Empty(err.Details)

	// 带详情的错误
	err = New(ErrSessionNotFound, "会话ID: abc")
	suite.Equal(ErrSessionNotFound, err.Code)
	suite.Equal("会话ID: abc", err.Details)

	// 多个详情
	err = New(ErrDatabaseConnect, "连接失败", "主机: localhost")
	suite.Equal("连接失败; 主机: localhost", err.Details)
}

// 测试格式化错误创建
func (suite *ErrorsTestSuite) TestNewf() {
	err := Newf(ErrInvalidParam, "参数 %s 的值 %d 无效", "page", -1)
	suite.Equal(ErrInvalidParam, err.Code)
	suite.Equal("参数 page 的值 -1 无效", err.Details)
}

// 测试错误包装
func (suite *ErrorsTestSuite) TestWrap() {
	originalErr := errors.New("原始错误")
	wrappedErr := Wrap(originalErr, ErrDatabaseQuery)
	suite.NotNil(wrappedErr)
	suite.Equal(ErrDatabaseQuery, wrappedErr.Code)
	suite.Equal("原始错误", wrappedErr.Details)
	suite.Equal(originalErr, wrappedErr.Cause)

	// 包装nil错误
	suite.Nil(Wrap(nil, ErrUnknown))

	// 包装已有的AppError保留原始错误码
	appErr := New(ErrDailyLimitReached)
	wrappedAppErr := Wrap(appErr, ErrUnknown, "额外信息")
	suite.Equal(ErrDailyLimitReached, wrappedAppErr.Code)
	suite.Contains(wrappedAppErr.Details, "额外信息")
}

// 测试错误码判断
func (suite *ErrorsTestSuite) TestIs() {
	err := New(ErrActiveSessionExists)
	suite.True(Is(err, ErrActiveSessionExists))
	suite.False(Is(err, ErrDailyLimitReached))
	suite.False(Is(nil, ErrActiveSessionExists))
	suite.False(Is(errors.New("普通错误"), ErrActiveSessionExists))
}

// 测试域错误判断
func (suite *ErrorsTestSuite) TestIsDomainError() {
	suite.True(IsDomainError(New(ErrInvalidWordFormat)))
	suite.True(IsDomainError(New(ErrSessionNotAuthorized)))
	suite.False(IsDomainError(New(ErrDatabaseQuery)))
	suite.False(IsDomainError(New(ErrTokenExpired)))
	suite.False(IsDomainError(nil))
}

// 测试HTTP状态映射
func (suite *ErrorsTestSuite) TestHTTPStatus() {
	cases := []struct {
		code   ErrorCode
		status int
	}{
		{ErrInvalidWordFormat, 400},
		{ErrSessionCompleted, 400},
		{ErrMaxGuessesReached, 400},
		{ErrActiveSessionExists, 400},
		{ErrDailyLimitReached, 400},
		{ErrNoWordsAvailable, 500},
		{ErrSessionNotFound, 404},
		{ErrSessionNotAuthorized, 403},
		{ErrNotFound, 404},
		{ErrAlreadyExists, 400},
		{ErrAuthentication, 401},
		{ErrTokenExpired, 401},
		{ErrDatabaseQuery, 503},
		{ErrUnknown, 500},
	}

	for _, c := range cases {
		suite.Equal(c.status, New(c.code).HTTPStatus(), "code %d", c.code)
	}
}

// 测试错误消息格式
func (suite *ErrorsTestSuite) TestErrorString() {
	err := New(ErrSessionCompleted)
	suite.Contains(err.Error(), "2001")
	suite.Contains(err.Error(), "游戏会话已结束")

	err = New(ErrSessionCompleted, "会话: xyz")
	suite.Contains(err.Error(), "会话: xyz")
}

// 测试Unwrap链
func (suite *ErrorsTestSuite) TestUnwrap() {
	originalErr := errors.New("底层错误")
	wrapped := Wrap(originalErr, ErrDatabaseQuery)
	suite.True(errors.Is(wrapped, originalErr))
}

// 测试调用栈捕获
func (suite *ErrorsTestSuite) TestStackCapture() {
	err := New(ErrUnknown)
	suite.NotEmpty(err.Stack)
	suite.NotEmpty(err.GetStack())
}

func TestErrorsTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}
