/*
Package rabbitmq implements the relay Publisher over an AMQP 0.9.1 broker.
The adapter is interface-first: it publishes through a minimal Publisher
abstraction, with a concrete auto-reconnecting connection provided by
NewWithAMQPConn.
*/
package rabbitmq
