// Command wfqsched runs the weighted fair queueing packet scheduler.
package main

func main() {
	Execute()
}
