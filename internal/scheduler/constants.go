package scheduler

const LogMsgTickSkipped = "Scheduled run still pending, tick skipped"
