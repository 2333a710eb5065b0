package helper

import (
	"github.com/drunkenberger/akiba/relay/channel"
	"github.com/drunkenberger/akiba/relay/channel/fal"
	"github.com/drunkenberger/akiba/relay/constant"
)

func GetAdaptor(apiType int) channel.Adaptor {
	switch apiType {
	case constant.APITypeFal:
		return &fal.Adaptor{}
	}
	return nil
}
