package test

import (
	"errors"
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/go-logr/logr/testr"
	"github.com/miruken-go/either"
	"github.com/miruken-go/either/log"
	"github.com/stretchr/testify/suite"
)

type LogTestSuite struct {
	suite.Suite
	lines []string
}

func (suite *LogTestSuite) SetupTest() {
	suite.lines = nil
}

func (suite *LogTestSuite) capture(verbosity int) logr.Logger {
	return funcr.New(func(prefix, args string) {
		suite.lines = append(suite.lines, prefix+" "+args)
	}, funcr.Options{Verbosity: verbosity})
}

func (suite *LogTestSuite) TestReport() {
	suite.Run("Right", func() {
		suite.SetupTest()
		reporter := log.New(suite.capture(0))
		e := either.Right[string](6)
		suite.Equal(e, log.Report(reporter, e, "computed", "op", "inc"))
		suite.Require().Len(suite.lines, 1)
		suite.Contains(suite.lines[0], `"msg"="computed"`)
		suite.Contains(suite.lines[0], `"op"="inc"`)
		suite.Contains(suite.lines[0], `"right"=6`)
	})

	suite.Run("Left", func() {
		suite.SetupTest()
		reporter := log.New(suite.capture(0))
		log.Report(reporter, either.Left[string, int]("err"), "computed")
		suite.Require().Len(suite.lines, 1)
		suite.Contains(suite.lines[0], `"left"="err"`)
	})

	suite.Run("Left Error", func() {
		suite.SetupTest()
		reporter := log.New(suite.capture(0))
		log.Report(reporter, either.Left[error, int](errors.New("boom")), "computed")
		suite.Require().Len(suite.lines, 1)
		suite.Contains(suite.lines[0], `"error"="boom"`)
	})

	suite.Run("Name", func() {
		suite.SetupTest()
		reporter := log.New(suite.capture(0), log.Name("parser"))
		log.Report(reporter, either.Right[string](1), "parsed")
		suite.Require().Len(suite.lines, 1)
		suite.Contains(suite.lines[0], "parser")
	})

	suite.Run("Verbosity", func() {
		suite.SetupTest()
		reporter := log.New(suite.capture(0), log.Verbosity(1))
		log.Report(reporter, either.Right[string](1), "quiet")
		log.Report(reporter, either.Left[string, int]("err"), "loud")
		suite.Require().Len(suite.lines, 1)
		suite.Contains(suite.lines[0], `"msg"="loud"`)
	})

	suite.Run("Testr", func() {
		reporter := log.New(
			testr.NewWithOptions(suite.T(), testr.Options{Verbosity: 1}),
			log.Verbosity(1))
		log.Report(reporter, either.Right[string]("World"), "Hello")
	})
}

func (suite *LogTestSuite) TestMarshalLog() {
	suite.SetupTest()
	logger := suite.capture(0)
	logger.Info("outcome", "result", either.Left[string, int]("err"))
	suite.Require().Len(suite.lines, 1)
	suite.Contains(suite.lines[0], `"result"={"left":"err"}`)
}

func TestLogTestSuite(t *testing.T) {
	suite.Run(t, new(LogTestSuite))
}
