package main

import "github.com/AssemblyAI-Community/assemblyai-slack-bot/cmd/slackbot/cmd"

func main() {
	cmd.Execute()
}
