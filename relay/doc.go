/*
Package relay bridges in-process signal events to external transports.
It serializes fired payloads and hands them to a contract Publisher while
remaining decoupled from concrete brokers via interfaces.
*/
package relay
