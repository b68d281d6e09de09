package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	Conflict            = 409
	InternalServerError = 500
)

var (
	ErrParamInvalid         = errors.New("参数错误")
	ErrUserNotFound         = errors.New("用户不存在")
	ErrUserExist            = errors.New("用户已存在")
	ErrPasswordIncorrect    = errors.New("密码错误")
	ErrCodeIncorrect        = errors.New("验证码错误或已过期")
	ErrUserAlreadyVerified  = errors.New("用户已完成验证")
	ErrTeamExists           = errors.New("该用户已拥有队伍")
	ErrTeamNotFound         = errors.New("队伍不存在")
	ErrTeamSize             = errors.New("必须选择恰好 5 位艺人")
	ErrTeamDuplicateArtiste = errors.New("所选艺人不能重复")
	ErrCaptainNotInTeam     = errors.New("队长必须是所选艺人之一")
	ErrArtisteInvalid       = errors.New("存在无效或未激活的艺人")
	ErrCoinLimitExceeded    = errors.New("超出金币预算上限")
	ErrUpstream             = errors.New("外部数据源异常")
	UnauthorizedError       = errors.New("权限不足")
	UnExpectedError         = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:         BadRequest,
	ErrUserNotFound:         NotFound,
	ErrUserExist:            Conflict,
	ErrPasswordIncorrect:    Unauthorized,
	ErrCodeIncorrect:        Unauthorized,
	ErrUserAlreadyVerified:  BadRequest,
	ErrTeamExists:           Conflict,
	ErrTeamNotFound:         NotFound,
	ErrTeamSize:             BadRequest,
	ErrTeamDuplicateArtiste: BadRequest,
	ErrCaptainNotInTeam:     BadRequest,
	ErrArtisteInvalid:       BadRequest,
	ErrCoinLimitExceeded:    BadRequest,
	ErrUpstream:             InternalServerError,
	UnauthorizedError:       Unauthorized,
	UnExpectedError:         InternalServerError,
}
