package statistic

import "fmt"

func redisKeyPointLeaderBoard(missionID string) string {
	return fmt.Sprintf("%s:point", missionID)
}
